// Package errors defines the error types used across the RMS API.
// Service-layer code returns AppErrors so handlers can map every failure to
// a consistent HTTP status and message without inspecting error strings.
package errors

import "net/http"

// AppError is a structured application error carrying an error code, a
// caller-facing message, the HTTP status it maps to, and an optional wrapped
// internal error that is logged but only surfaced for unexpected failures.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap returns a copy of sentinel carrying internal as the wrapped cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// AI tool errors.
var (
	ErrAIToolNotFound = &AppError{Code: "AI_TOOL_NOT_FOUND", Message: "AI tool not found", StatusCode: http.StatusNotFound}
)

// Allocation errors.
var (
	ErrAllocationNotFound      = &AppError{Code: "ALLOCATION_NOT_FOUND", Message: "Allocation not found", StatusCode: http.StatusNotFound}
	ErrAllocationNotApprovable = &AppError{Code: "ALLOCATION_NOT_PENDING", Message: "Only pending_approval requests can be approved", StatusCode: http.StatusBadRequest}
	ErrAllocationNotRejectable = &AppError{Code: "ALLOCATION_NOT_PENDING", Message: "Only pending_approval requests can be rejected", StatusCode: http.StatusBadRequest}
	ErrRejectionReasonRequired = &AppError{Code: "REJECTION_REASON_REQUIRED", Message: "Rejection reason is required", StatusCode: http.StatusBadRequest}
)
