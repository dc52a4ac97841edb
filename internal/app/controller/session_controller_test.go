package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/citra/storefront/internal/app/service"
	"github.com/citra/storefront/internal/middleware"
	"github.com/citra/storefront/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupControllerTest(t *testing.T, opts service.StorefrontOptions) (*service.Storefront, *gin.Engine) {
	t.Helper()
	storefront, err := service.NewStorefrontFromSnapshot(seed.Default(), opts)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	binding.EnableDecoderDisallowUnknownFields = true
	router := gin.New()

	return storefront, router
}

// Helper function to set the session id the way RequireSession does
func withSession(sessionID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionIDKey, sessionID)
	}
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestSessionController_CreateSession(t *testing.T) {
	storefront, router := setupControllerTest(t, service.StorefrontOptions{})
	ctrl := NewSessionController(storefront)
	router.POST("/sessions", ctrl.CreateSession)

	w := doRequest(router, http.MethodPost, "/sessions", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	session := decode(t, w)["session"].(map[string]interface{})
	sid := session["id"].(string)
	assert.NotEmpty(t, sid)
	assert.Equal(t, false, session["adminMode"])

	_, err := storefront.Session(sid)
	assert.NoError(t, err)
}

func TestSessionController_GetSession(t *testing.T) {
	storefront, router := setupControllerTest(t, service.StorefrontOptions{})
	ctrl := NewSessionController(storefront)
	sid := storefront.NewSession().ID
	_, err := storefront.AddToCart(sid, "1")
	require.NoError(t, err)

	router.GET("/session", withSession(sid), ctrl.GetSession)

	w := doRequest(router, http.MethodGet, "/session", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	session := decode(t, w)["session"].(map[string]interface{})
	assert.Equal(t, float64(1), session["cartCount"])
	assert.Equal(t, float64(89000), session["cartTotal"])
}

func TestSessionController_EndSession(t *testing.T) {
	storefront, router := setupControllerTest(t, service.StorefrontOptions{})
	ctrl := NewSessionController(storefront)
	sid := storefront.NewSession().ID
	router.DELETE("/sessions/:sid", ctrl.EndSession)

	w := doRequest(router, http.MethodDelete, "/sessions/"+sid, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["ended"])

	w = doRequest(router, http.MethodDelete, "/sessions/"+sid, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["ended"])
}

func TestSessionController_SetAdminMode(t *testing.T) {
	storefront, router := setupControllerTest(t, service.StorefrontOptions{})
	ctrl := NewSessionController(storefront)
	sid := storefront.NewSession().ID
	router.PUT("/admin", withSession(sid), ctrl.SetAdminMode)

	w := doRequest(router, http.MethodPut, "/admin", map[string]interface{}{"enabled": true})
	assert.Equal(t, http.StatusOK, w.Code)
	session := decode(t, w)["session"].(map[string]interface{})
	assert.Equal(t, true, session["adminMode"])

	w = doRequest(router, http.MethodPut, "/admin", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code, "enabled is required")

	w = doRequest(router, http.MethodPut, "/admin", map[string]interface{}{"enabled": true, "role": "owner"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown fields are rejected")
	assert.Equal(t, "VALIDATION_INVALID_FORMAT", decode(t, w)["error"])
}
