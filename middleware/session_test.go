package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

// Request không có X-Session-ID được cấp một session id mới dạng uuid
func TestSessionMiddlewareIssuesNewSessionID(t *testing.T) {
	router := newSessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	sessionID := w.Header().Get("X-Session-ID")
	assert.NotEmpty(t, sessionID)
	_, err := uuid.Parse(sessionID)
	assert.NoError(t, err)
}

// Request đã có X-Session-ID giữ nguyên session id của nó
func TestSessionMiddlewareKeepsExistingSessionID(t *testing.T) {
	router := newSessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Session-ID", "phien-co-san")
	router.ServeHTTP(w, req)

	assert.Equal(t, "phien-co-san", w.Header().Get("X-Session-ID"))
}
