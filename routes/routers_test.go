package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, nil, nil, nil, melody.New())
	return router
}

func TestSetupRoutesRegistersCoreEndpoints(t *testing.T) {
	router := newTestRouter()

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/register",
		"GET /api/v1/members",
		"GET /api/v1/members/search",
		"GET /api/v1/events",
		"GET /api/v1/events/:id/default-date",
		"GET /api/v1/events/:id/check-date",
		"GET /api/v1/events/:id/attendance-dates",
		"POST /api/v1/attendance/check-in",
		"POST /api/v1/attendance/undo",
		"GET /api/v1/attendance",
		"GET /api/v1/attendance/summary",
		"GET /api/v1/reports/attendance",
		"GET /api/v1/reports/overview",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "thiếu route %s", route)
	}
}

// Middleware session được gắn cho mọi request đi qua router
func TestSetupRoutesAttachesSessionMiddleware(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/test-broadcast", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Session-ID"))
}
