// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"placemark/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrBackendNotConfigured gates every backend-dependent entry point.
	// It is checked before any other validation and before any network I/O.
	ErrBackendNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"BACKEND_NOT_CONFIGURED",
		"Firebase is not configured (missing API key, project ID or app ID)",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrEmptyAddressName = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_ADDRESS_NAME",
		"Address name cannot be empty",
		"",
	)

	ErrEmptyComment = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_COMMENT",
		"Comment text cannot be empty",
		"",
	)

	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Address not found",
		"",
	)

	ErrAddressOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"ADDRESS_OWNERSHIP_VIOLATION",
		"You can only delete your own addresses",
		"",
	)

	ErrAddressNotPublic = NewBaseError(
		http.StatusForbidden,
		"ADDRESS_NOT_PUBLIC",
		"This address is not shared publicly",
		"",
	)

	// Comment-related errors
	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"Comment not found",
		"",
	)

	ErrCommentOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"COMMENT_OWNERSHIP_VIOLATION",
		"You can only delete your own comments",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired ID token",
		"",
	)

	// Storage-related errors
	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"Photo upload failed",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
