package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the sign-in routes. They need the session middleware
// but never the Auth middleware.
func RegisterRoutes(r gin.IRoutes, h Handler, redirectPath string) {
	r.GET("/login", h.Login)
	r.GET(redirectPath, h.Callback)
	r.GET("/logout", h.Logout)
}
