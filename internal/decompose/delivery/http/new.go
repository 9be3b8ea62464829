package http

import (
	"github.com/gin-gonic/gin"

	"em-agent/internal/decompose"
	"em-agent/pkg/log"
)

// Handler is the public interface for the decompose route.
type Handler interface {
	Decompose(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc decompose.UseCase
}

// New creates a new HTTP handler for the decompose domain.
func New(l log.Logger, uc decompose.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
