package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrDuplicateID   = errors.New("duplicate id")
	ErrNotFound      = errors.New("not found")
	ErrAdminRequired = errors.New("admin mode required")

	ErrSessionNotFound     = errors.New("session not found")
	ErrSnapshotUnavailable = errors.New("catalog persistence is not configured")
)

// ValidationError reports a missing or malformed field
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicateIDError reports an id collision within one sibling scope
type DuplicateIDError struct {
	Scope string // "categories", "makeup", "makeup/face"
	ID    string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("id %q already exists in %s", e.ID, e.Scope)
}

func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

// NotFoundError reports a missing entity
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
