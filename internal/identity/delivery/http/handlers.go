package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"em-agent/internal/identity"
	"em-agent/internal/session"
)

// Login godoc
// @Summary     Start sign-in
// @Description Stores a new anti-forgery state in the session and redirects to the identity provider.
// @Tags        Auth
// @Success     302
// @Router      /login [GET]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	sess, ok := session.FromContext(ctx)
	if !ok {
		h.renderAuthError(c, http.StatusInternalServerError, "session_unavailable", "")
		return
	}

	authURL, err := h.uc.BeginLogin(ctx, sess, identity.BeginLoginInput{RedirectURI: h.redirectURI(c)})
	if err != nil {
		h.l.Errorf(ctx, "uc.BeginLogin: %v", err)
		h.mapError(c, err)
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// Callback godoc
// @Summary     Sign-in callback
// @Description Completes the authorization-code flow and redirects to the index page.
// @Tags        Auth
// @Param       state             query string false "Anti-forgery state"
// @Param       code              query string false "Authorization code"
// @Param       error             query string false "Provider error code"
// @Param       error_description query string false "Provider error description"
// @Success     302
// @Router      /getAToken [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	sess, ok := session.FromContext(ctx)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	req := h.processCallbackReq(c)
	if err := h.uc.CompleteLogin(ctx, sess, req.toInput(h.redirectURI(c))); err != nil {
		h.l.Warnf(ctx, "uc.CompleteLogin: %v", err)
		h.mapError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout godoc
// @Summary     Sign out
// @Description Clears the session and redirects to the provider's logout page.
// @Tags        Auth
// @Success     302
// @Router      /logout [GET]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	next := "/"
	if sess, ok := session.FromContext(ctx); ok {
		next = h.uc.Logout(ctx, sess, identity.LogoutInput{PostLogoutRedirectURI: h.baseURL(c) + "/"})
	}
	c.Redirect(http.StatusFound, next)
}

func (h *handler) renderAuthError(c *gin.Context, status int, code, description string) {
	c.HTML(status, "auth_error.html", gin.H{
		"error":             code,
		"error_description": description,
	})
}
