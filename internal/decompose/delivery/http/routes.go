package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps POST /decompose. The handler answers 401 itself so the
// JSON error contract holds; extra middleware such as a rate limit goes in mws.
func RegisterRoutes(r gin.IRoutes, h Handler, mws ...gin.HandlerFunc) {
	r.POST("/decompose", append(mws, h.Decompose)...)
}
