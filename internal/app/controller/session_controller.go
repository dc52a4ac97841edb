package controller

import (
	"net/http"

	"github.com/citra/storefront/internal/app/service"
	"github.com/citra/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

type SessionController struct {
	shopper service.ShopperService
}

func NewSessionController(shopper service.ShopperService) *SessionController {
	return &SessionController{shopper: shopper}
}

type SetAdminModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// CreateSession starts an empty shopper session
// POST /api/v1/sessions
func (ctrl *SessionController) CreateSession(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	view := ctrl.shopper.NewSession()

	log.Info("Session created", map[string]interface{}{
		"session_id": view.ID,
	})
	c.JSON(http.StatusCreated, gin.H{
		"session": view,
	})
}

// GetSession returns selection and cart/favorites counters
// GET /api/v1/sessions/:sid
func (ctrl *SessionController) GetSession(c *gin.Context) {
	view, err := ctrl.shopper.Session(sessionID(c))
	if err != nil {
		respondError(c, "Failed to fetch session", err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": view,
	})
}

// EndSession drops the session; unknown ids are a no-op
// DELETE /api/v1/sessions/:sid
func (ctrl *SessionController) EndSession(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sid := c.Param(middleware.SessionIDParam)
	ended := ctrl.shopper.EndSession(sid)

	log.Info("Session end requested", map[string]interface{}{
		"session_id": sid,
		"ended":      ended,
	})
	c.JSON(http.StatusOK, gin.H{
		"ended": ended,
	})
}

// SetAdminMode flips the admin flag
// PUT /api/v1/sessions/:sid/admin
func (ctrl *SessionController) SetAdminMode(c *gin.Context) {
	var req SetAdminModeRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := ctrl.shopper.SetAdminMode(sessionID(c), *req.Enabled)
	if err != nil {
		respondError(c, "Failed to set admin mode", err, map[string]interface{}{
			"session_id": sessionID(c),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": view,
	})
}
