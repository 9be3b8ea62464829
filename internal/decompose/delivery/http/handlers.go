package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"em-agent/internal/model"
	"em-agent/internal/session"
	pkgErrors "em-agent/pkg/errors"
	"em-agent/pkg/response"
)

// Decompose godoc
// @Summary     Break a task into first steps
// @Description Sends the task to the completion service and returns the suggested steps and a short encouragement.
// @Tags        Decompose
// @Accept      json
// @Produce     json
// @Param       body body     object{task_description=string} true "Task to break down"
// @Success     200  {object} decomposeResp
// @Failure     400  {object} response.ErrorBody "Request must be JSON / Missing 'task_description'"
// @Failure     401  {object} response.ErrorBody "User not authenticated"
// @Failure     429  {object} response.ErrorBody "Too many requests"
// @Failure     500  {object} response.ErrorBody "Failed to get decomposition from AI service."
// @Router      /decompose [POST]
func (h *handler) Decompose(c *gin.Context) {
	ctx := c.Request.Context()

	sess, ok := session.FromContext(ctx)
	if !ok || !sess.Authenticated() {
		h.abort(c, pkgErrors.ErrUnauthorized)
		return
	}

	req, err := h.processDecomposeReq(c)
	if err != nil {
		h.abort(c, h.mapError(err))
		return
	}

	output, err := h.uc.Decompose(ctx, model.NewScope(sess.User), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Decompose: %v", err)
		h.abort(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newDecomposeResp(output))
}

func (h *handler) abort(c *gin.Context, err *pkgErrors.HTTPError) {
	response.Abort(c, err)
}
