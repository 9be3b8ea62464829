package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"em-agent/internal/identity"
)

type callbackReq struct {
	State            string `form:"state"`
	Code             string `form:"code"`
	Error            string `form:"error"`
	ErrorDescription string `form:"error_description"`
}

func (r callbackReq) toInput(redirectURI string) identity.CallbackInput {
	return identity.CallbackInput{
		State:            r.State,
		Code:             r.Code,
		Error:            r.Error,
		ErrorDescription: r.ErrorDescription,
		RedirectURI:      redirectURI,
	}
}

// processCallbackReq reads the provider's query parameters. Binding plain
// strings cannot fail, so unknown parameters are ignored.
func (h *handler) processCallbackReq(c *gin.Context) callbackReq {
	var req callbackReq
	_ = c.ShouldBindQuery(&req)
	return req
}

// baseURL is scheme://host of this service as seen by the browser.
func (h *handler) baseURL(c *gin.Context) string {
	if h.externalURL != "" {
		return h.externalURL
	}
	scheme := "http"
	if c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func (h *handler) redirectURI(c *gin.Context) string {
	return h.baseURL(c) + h.redirectPath
}
