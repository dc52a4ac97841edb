package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/citra/storefront/internal/app/model"
	"gorm.io/gorm"
)

// ErrorInfo is the HTTP shape of an error
type ErrorInfo struct {
	Status  int
	Code    string // see codes.go
	Message string
}

// ParseError maps an error returned by the services to an HTTP status and code.
// Domain errors keep their message; storage errors are reduced to a generic one.
func ParseError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{Status: http.StatusInternalServerError, Code: InternalServerError, Message: "internal server error"}
	}

	var validationErr *model.ValidationError
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return ErrorInfo{Status: http.StatusNotFound, Code: SessionNotFound, Message: err.Error()}
	case errors.Is(err, model.ErrAdminRequired):
		return ErrorInfo{Status: http.StatusForbidden, Code: AuthzAdminOnly, Message: err.Error()}
	case errors.As(err, &validationErr):
		code := ValidationInvalidInput
		if validationErr.Reason == "is required" {
			code = ValidationRequired
		}
		return ErrorInfo{Status: http.StatusBadRequest, Code: code, Message: err.Error()}
	case errors.Is(err, model.ErrValidation):
		return ErrorInfo{Status: http.StatusBadRequest, Code: ValidationInvalidInput, Message: err.Error()}
	case errors.Is(err, model.ErrDuplicateID):
		return ErrorInfo{Status: http.StatusConflict, Code: ResourceAlreadyExists, Message: err.Error()}
	case errors.Is(err, model.ErrNotFound):
		return ErrorInfo{Status: http.StatusNotFound, Code: ResourceNotFound, Message: err.Error()}
	case errors.Is(err, model.ErrSnapshotUnavailable):
		return ErrorInfo{Status: http.StatusConflict, Code: CatalogPersistenceDisabled, Message: err.Error()}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrorInfo{Status: http.StatusNotFound, Code: ResourceNotFound, Message: "record not found"}
	}

	errStrLower := strings.ToLower(err.Error())

	// PostgreSQL constraint violations (23505 / 23503)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return ErrorInfo{Status: http.StatusConflict, Code: ResourceConflict, Message: "catalog contains duplicate records"}
	}
	if strings.Contains(errStrLower, "foreign key constraint") {
		return ErrorInfo{Status: http.StatusConflict, Code: ResourceConflict, Message: "catalog references a missing record"}
	}

	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Status:  http.StatusServiceUnavailable,
			Code:    InternalDatabaseError,
			Message: "database is unavailable, try again later",
		}
	}

	return ErrorInfo{Status: http.StatusInternalServerError, Code: InternalServerError, Message: "internal server error"}
}
