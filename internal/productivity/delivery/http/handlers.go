package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"em-agent/internal/model"
	"em-agent/internal/productivity"
	"em-agent/internal/session"
	"em-agent/pkg/response"
)

// CalendarPage renders the upcoming events. A failed fetch renders an empty list.
func (h *handler) CalendarPage(c *gin.Context) {
	ctx := c.Request.Context()
	sess, sc := h.caller(c)

	var events []model.Event
	output, err := h.uc.ListEvents(ctx, sc, productivity.ListEventsInput{Token: sess.Token})
	if err != nil {
		h.l.Warnf(ctx, "uc.ListEvents: %v", err)
	} else {
		events = output.Events
	}

	c.HTML(http.StatusOK, "calendar.html", gin.H{
		"user":   sess.User,
		"events": events,
	})
}

// TasksPage renders the open tasks. A failed fetch renders an empty list.
func (h *handler) TasksPage(c *gin.Context) {
	ctx := c.Request.Context()
	sess, sc := h.caller(c)

	var tasks []model.TodoTask
	output, err := h.uc.ListTasks(ctx, sc, productivity.ListTasksInput{Token: sess.Token})
	if err != nil {
		h.l.Warnf(ctx, "uc.ListTasks: %v", err)
	} else {
		tasks = output.Tasks
	}

	c.HTML(http.StatusOK, "tasks.html", gin.H{
		"user":  sess.User,
		"tasks": tasks,
	})
}

// ListEvents godoc
// @Summary     List upcoming events
// @Description Returns the signed-in user's calendar events for the next seven days.
// @Tags        Productivity
// @Produce     json
// @Success     200 {object} listEventsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()
	sess, sc := h.caller(c)

	output, err := h.uc.ListEvents(ctx, sc, productivity.ListEventsInput{Token: sess.Token})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListEventsResp(output))
}

// ListTasks godoc
// @Summary     List open tasks
// @Description Returns the signed-in user's tasks that are not completed.
// @Tags        Productivity
// @Produce     json
// @Success     200 {object} listTasksResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	sess, sc := h.caller(c)

	output, err := h.uc.ListTasks(ctx, sc, productivity.ListTasksInput{Token: sess.Token})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListTasksResp(output))
}

// caller returns the session the Auth middleware validated.
func (h *handler) caller(c *gin.Context) (*session.Session, model.Scope) {
	sess, ok := session.FromContext(c.Request.Context())
	if !ok {
		return &session.Session{}, model.Scope{}
	}
	return sess, model.NewScope(sess.User)
}
