package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"em-agent/internal/session"
)

// Session loads the session named by the signed cookie, or starts a new one,
// and attaches it to the request context. A new session is not stored here;
// it reaches the store only when sign-in writes to it.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var (
			sess  session.Session
			found bool
		)
		if raw, err := c.Cookie(m.cookie.Name); err == nil {
			if id, ok := m.signer.Verify(raw); ok {
				sess, found = m.store.Get(ctx, id)
			} else {
				m.l.Debugf(ctx, "middleware.Session: rejected cookie with bad signature")
			}
		}

		if !found {
			sess = session.New()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(m.cookie.Name, m.signer.Sign(sess.ID), int(m.cookie.TTL.Seconds()), "/", "", m.cookie.Secure, true)
		}

		c.Request = c.Request.WithContext(session.SetToContext(ctx, &sess))
		c.Next()
	}
}
