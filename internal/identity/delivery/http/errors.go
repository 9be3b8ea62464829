package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"em-agent/internal/identity"
)

// mapError answers a failed sign-in step. Provider errors are shown to the
// user; anything else sends the browser back to the index page.
func (h *handler) mapError(c *gin.Context, err error) {
	var pe *identity.ProviderError
	switch {
	case errors.As(err, &pe):
		h.renderAuthError(c, http.StatusOK, pe.Code, pe.Description)
	case errors.Is(err, identity.ErrNotConfigured):
		h.renderAuthError(c, http.StatusServiceUnavailable, "not_configured", "Sign-in is not configured on this server.")
	default:
		c.Redirect(http.StatusFound, "/")
	}
}
