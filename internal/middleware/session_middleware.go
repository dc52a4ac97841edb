package middleware

import (
	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/internal/app/service"
	apperrors "github.com/citra/storefront/internal/errors"
	"github.com/gin-gonic/gin"
)

// Context keys for session information
const (
	SessionIDKey = "session_id"
	AdminModeKey = "admin_mode"

	SessionIDParam = "sid"
)

// SessionLookup resolves a session id to its current view
type SessionLookup interface {
	Session(sessionID string) (service.SessionView, error)
}

type SessionMiddleware struct {
	sessions SessionLookup
}

func NewSessionMiddleware(sessions SessionLookup) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession resolves the :sid path parameter (required)
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		sessionID := c.Param(SessionIDParam)
		view, err := m.sessions.Session(sessionID)
		if err != nil {
			log.Warn("Unknown session", map[string]interface{}{
				"session_id": sessionID,
				"path":       c.Request.URL.Path,
			})
			apperrors.ParseAndRespond(c, err)
			return
		}

		c.Set(SessionIDKey, view.ID)
		c.Set(AdminModeKey, view.AdminMode)
		c.Next()
	}
}

// RequireAdmin must run after RequireSession
func (m *SessionMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		if !c.GetBool(AdminModeKey) {
			log.Warn("Admin mode required", map[string]interface{}{
				"session_id": c.GetString(SessionIDKey),
				"path":       c.Request.URL.Path,
			})
			apperrors.ParseAndRespond(c, model.ErrAdminRequired)
			return
		}
		c.Next()
	}
}

// GetSessionID extracts the session id set by RequireSession
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID := c.GetString(SessionIDKey)
	return sessionID, sessionID != ""
}
