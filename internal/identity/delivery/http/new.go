package http

import (
	"github.com/gin-gonic/gin"

	"em-agent/internal/identity"
	"em-agent/pkg/log"
)

// Handler is the public interface for the sign-in routes.
type Handler interface {
	Login(c *gin.Context)
	Callback(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l            log.Logger
	uc           identity.UseCase
	externalURL  string
	redirectPath string
}

// New creates the sign-in handler. externalURL may be empty, in which case
// absolute URLs are derived from the incoming request.
func New(l log.Logger, uc identity.UseCase, externalURL, redirectPath string) Handler {
	return &handler{
		l:            l,
		uc:           uc,
		externalURL:  externalURL,
		redirectPath: redirectPath,
	}
}
