package http

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
)

// isJSON accepts application/json and application/*+json media types.
func isJSON(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	return ct == "application/json" || (strings.HasPrefix(ct, "application/") && strings.HasSuffix(ct, "+json"))
}

// processDecomposeReq reads the JSON body. A task_description that is not a
// string is treated as missing.
func (h *handler) processDecomposeReq(c *gin.Context) (decomposeReq, error) {
	if !isJSON(c.ContentType()) {
		return decomposeReq{}, errNotJSON
	}

	var body map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
		return decomposeReq{}, errNotJSON
	}

	desc, _ := body["task_description"].(string)
	if strings.TrimSpace(desc) == "" {
		return decomposeReq{}, errMissingDescription
	}
	return decomposeReq{TaskDescription: desc}, nil
}
