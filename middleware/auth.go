package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cabadmin/config"
	"cabadmin/utils"
)

// ContextTokenKey is the gin context key the upstream bearer token is stored
// under. Handlers forward it to the booking backend on every request.
const ContextTokenKey = "upstreamToken"

// ContextAdminKey is the gin context key for the authenticated admin's id.
const ContextAdminKey = "adminID"

// UpstreamAuthMiddleware extracts the admin's bearer token from the request.
// A present token must be a valid console JWT; a missing header is allowed
// through with the configured service token (or none at all) so the booking
// backend makes the final call. Either way the resolved token is stashed for
// the handlers to forward.
func UpstreamAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(ContextTokenKey, config.AppConfig.APIToken)
			c.Next()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(ContextAdminKey, adminID)
		c.Set(ContextTokenKey, tokenString)
		c.Next()
	}
}
