package http

import (
	"github.com/gin-gonic/gin"

	"em-agent/internal/productivity"
	"em-agent/pkg/log"
)

// Handler is the public interface for the calendar and task routes.
type Handler interface {
	CalendarPage(c *gin.Context)
	TasksPage(c *gin.Context)
	ListEvents(c *gin.Context)
	ListTasks(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc productivity.UseCase
}

// New creates a new HTTP handler for the productivity domain.
func New(l log.Logger, uc productivity.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
