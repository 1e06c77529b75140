package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabadmin/config"
	"cabadmin/utils"
)

func TestUpstreamAuthStashesValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	token, err := utils.GenerateToken("ops@example.com", "ops@example.com", time.Hour)
	require.NoError(t, err)

	var gotToken, gotAdmin string
	r := gin.New()
	r.Use(UpstreamAuthMiddleware())
	r.GET("/x", func(c *gin.Context) {
		gotToken = c.GetString(ContextTokenKey)
		gotAdmin = c.GetString(ContextAdminKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, token, gotToken)
	assert.Equal(t, "ops@example.com", gotAdmin)
}

func TestUpstreamAuthRejectsInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(UpstreamAuthMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpstreamAuthMissingHeaderFallsBackToServiceToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := config.AppConfig.APIToken
	config.AppConfig.APIToken = "svc-token"
	t.Cleanup(func() { config.AppConfig.APIToken = prev })

	var gotToken string
	r := gin.New()
	r.Use(UpstreamAuthMiddleware())
	r.GET("/x", func(c *gin.Context) {
		gotToken = c.GetString(ContextTokenKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "svc-token", gotToken)
}
