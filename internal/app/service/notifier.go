package service

import (
	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/pkg/logger"
)

// Notifier receives the transient messages produced by admin actions
type Notifier interface {
	Notify(sessionID string, n model.Notification)
}

type logNotifier struct{}

func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(sessionID string, n model.Notification) {
	fields := logger.Fields{
		"session_id": sessionID,
		"type":       n.Type,
	}
	if n.Type == model.NotificationError {
		logger.Warn(n.Message, fields)
		return
	}
	logger.Info(n.Message, fields)
}
