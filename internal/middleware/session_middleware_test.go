package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/internal/app/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions map[string]service.SessionView

func (s stubSessions) Session(sessionID string) (service.SessionView, error) {
	view, ok := s[sessionID]
	if !ok {
		return service.SessionView{}, model.ErrSessionNotFound
	}
	return view, nil
}

func setupSessionMiddlewareTest() *gin.Engine {
	gin.SetMode(gin.TestMode)

	m := NewSessionMiddleware(stubSessions{
		"shopper": {ID: "shopper"},
		"owner":   {ID: "owner", AdminMode: true},
	})

	router := gin.New()
	router.Use(LoggingMiddleware())
	sessions := router.Group("/sessions/:sid", m.RequireSession())
	sessions.GET("", func(c *gin.Context) {
		id, ok := GetSessionID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok, "admin": c.GetBool(AdminModeKey)})
	})
	sessions.GET("/admin", m.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": true})
	})
	return router
}

func TestRequireSession(t *testing.T) {
	router := setupSessionMiddlewareTest()

	tests := []struct {
		name      string
		path      string
		wantCode  int
		wantError string
	}{
		{"known session", "/sessions/shopper", http.StatusOK, ""},
		{"unknown session", "/sessions/ghost", http.StatusNotFound, "SESSION_NOT_FOUND"},
		{"admin route as shopper", "/sessions/shopper/admin", http.StatusForbidden, "AUTHZ_ADMIN_ONLY"},
		{"admin route as admin", "/sessions/owner/admin", http.StatusOK, ""},
		{"admin route unknown session", "/sessions/ghost/admin", http.StatusNotFound, "SESSION_NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, response["error"])
			}
		})
	}
}

func TestRequireSession_SetsContext(t *testing.T) {
	router := setupSessionMiddlewareTest()

	req := httptest.NewRequest(http.MethodGet, "/sessions/owner", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "owner", response["id"])
	assert.Equal(t, true, response["ok"])
	assert.Equal(t, true, response["admin"])
}
