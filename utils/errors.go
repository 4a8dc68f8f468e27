package utils

import (
	"fmt"
	"net/http"
)

// AppError represents an application error
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InvalidTransitionError creates a 409 Conflict error for a disallowed
// status change
func InvalidTransitionError(from, to string) *AppError {
	return NewAppError(http.StatusConflict, fmt.Sprintf("cannot transition from %s to %s", from, to), nil)
}

// MissingReasonError creates a 400 error for a rejection without a reason
func MissingReasonError() *AppError {
	return NewAppError(http.StatusBadRequest, "rejection reason is required", nil)
}
