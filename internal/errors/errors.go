// Package errors provides the application error type for the PrivFin API.
// All service-layer errors use AppError so the HTTP boundary can translate
// them into consistent responses without leaking internal details.
package errors

import "net/http"

// Issue describes a single field-level validation failure.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// AppError represents a structured application error with a machine-readable
// code, human-readable message, HTTP status code, and optional internal error.
// Validation errors additionally carry per-field issues.
type AppError struct {
	Code       string  `json:"code"`
	Message    string  `json:"message"`
	Details    []Issue `json:"details,omitempty"`
	StatusCode int     `json:"-"`
	Internal   error   `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation creates a 400 AppError carrying the per-field issues.
func Validation(issues []Issue) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Validation error",
		Details:    issues,
		StatusCode: http.StatusBadRequest,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "VALIDATION_ERROR", Message: "Validation error", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
)
