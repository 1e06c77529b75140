package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabadmin/utils"
)

// Health reports process liveness and the session cache connection.
func Health(c *gin.Context) {
	status := gin.H{"status": "ok"}
	if err := utils.GetSessionCacheClient().Ping(c.Request.Context()).Err(); err != nil {
		status["status"] = "degraded"
		status["cache"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	status["cache"] = "ok"
	c.JSON(http.StatusOK, status)
}
