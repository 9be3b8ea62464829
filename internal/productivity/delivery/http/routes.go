package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes maps the HTML pages. pageAuth redirects anonymous browsers to sign in.
func RegisterPageRoutes(r gin.IRoutes, h Handler, pageAuth gin.HandlerFunc) {
	r.GET("/calendar", pageAuth, h.CalendarPage)
	r.GET("/tasks", pageAuth, h.TasksPage)
}

// RegisterRoutes maps the JSON API under rg. apiAuth answers 401 for anonymous callers.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, apiAuth gin.HandlerFunc) {
	rg.GET("/calendar/events", apiAuth, h.ListEvents)
	rg.GET("/tasks", apiAuth, h.ListTasks)
}
