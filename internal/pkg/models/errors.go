package models

import (
	"errors"
	"fmt"
)

// Sentinel errors used with errors.Is across services
var (
	ErrValidation = errors.New("validation failed")
	ErrCapacity   = errors.New("capacity reached")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage failure")
	ErrNoLink     = errors.New("no shareable link")
	ErrConflict   = errors.New("conflict")
	ErrPosition   = errors.New("position unavailable")

	// ErrInvalidCredentials is returned by login for an unknown phone or a wrong PIN
	ErrInvalidCredentials = errors.New("invalid phone or pin")
)

// ValidationError reports a rejected field value
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError creates a validation error for a field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// CapacityError is returned when a bounded collection is full
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("limit of %d reached", e.Limit)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }

// NotFoundError is returned when a resource id does not exist
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StorageError wraps a persistence failure
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// NoLinkError is returned when a session has no shareable link yet
type NoLinkError struct{}

func (e *NoLinkError) Error() string { return "no shareable link: session is not active" }

func (e *NoLinkError) Is(target error) bool { return target == ErrNoLink }

// ConflictError is returned when an operation collides with existing state
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// PositionErrorCode classifies a failed position acquisition
type PositionErrorCode string

const (
	PositionPermissionDenied PositionErrorCode = "permission_denied"
	PositionUnavailable      PositionErrorCode = "position_unavailable"
	PositionTimeout          PositionErrorCode = "timeout"
)

// PositionError reports why a position fix could not be obtained
type PositionError struct {
	Code    PositionErrorCode `json:"code"`
	Message string            `json:"message"`
}

func (e *PositionError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PositionError) Is(target error) bool { return target == ErrPosition }

// Valid reports whether the code is one of the known position error codes
func (c PositionErrorCode) Valid() bool {
	switch c {
	case PositionPermissionDenied, PositionUnavailable, PositionTimeout:
		return true
	}
	return false
}
