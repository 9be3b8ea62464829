package httpserver

import (
	"github.com/gin-gonic/gin"

	"em-agent/pkg/response"
)

const (
	HealthMessage = "One small step at a time"
	HealthVersion = "1.0.0"
	ServiceName   = "em-agent"
)

func (srv *HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":  state,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck godoc
// @Summary     Health Check
// @Description Check if the server is running
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports which upstream integrations are configured. The server
// still serves pages without them, so it always answers 200.
// @Summary     Readiness Check
// @Description Check if the server is ready to accept traffic
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	body := srv.status("ready")
	body["identity_configured"] = srv.identityEnabled
	body["completion_configured"] = srv.completionEnabled
	response.OK(c, body)
}

// @Summary     Liveness Check
// @Description Check if the server process is alive
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
