package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cabadmin/config"
	"cabadmin/utils"
)

const consoleTokenTTL = 12 * time.Hour

// IssueConsoleToken exchanges the operation's configured service key for a
// short-lived console JWT. The console holds no credential store of its own;
// this is the bootstrap for admins whose tooling only has the shared key.
func IssueConsoleToken(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	apiKey := config.AppConfig.APIToken
	if apiKey == "" || c.GetHeader("X-Api-Key") != apiKey {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
		return
	}

	token, err := utils.GenerateToken(input.Email, input.Email, consoleTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(consoleTokenTTL.Seconds()),
	})
}
