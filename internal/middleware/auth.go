package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"em-agent/internal/session"
	pkgErrors "em-agent/pkg/errors"
	"em-agent/pkg/response"
)

// Auth guards HTML pages: callers without a signed-in user or a usable access
// token are sent to /login.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authorize(c) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthAPI guards JSON routes and answers 401 instead of redirecting.
func (m Middleware) AuthAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authorize(c) {
			response.Error(c, pkgErrors.ErrUnauthorized, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// authorize refreshes the token when needed, so handlers can use sess.Token directly.
func (m Middleware) authorize(c *gin.Context) bool {
	ctx := c.Request.Context()

	sess, ok := session.FromContext(ctx)
	if !ok || !sess.Authenticated() {
		return false
	}
	if _, ok := m.identity.CurrentCredential(ctx, sess); !ok {
		m.l.Warnf(ctx, "middleware.Auth: no token for %s %s", c.Request.Method, c.Request.URL.Path)
		return false
	}
	return true
}
