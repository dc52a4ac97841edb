package model

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

// Notification is a transient message produced by an admin action
type Notification struct {
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
}

func Success(message string) Notification {
	return Notification{Type: NotificationSuccess, Message: message}
}

func Failure(err error) Notification {
	return Notification{Type: NotificationError, Message: err.Error()}
}

// IntegrityWarning flags a product whose taxonomy reference no longer resolves
type IntegrityWarning struct {
	ProductID string `json:"productId"`
	Level     string `json:"level"` // category, subCategory, subSubCategory
	Reference string `json:"reference"`
}
