package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// ErrRequestFormat is returned when the request body cannot be parsed at all.
var ErrRequestFormat = &AppError{Code: http.StatusBadRequest, Message: "Request body must be valid JSON"}

// NewValidationError creates an error for a missing or malformed request field
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// NewCollaboratorError wraps a rendering or storage failure. The upstream
// message is propagated unmodified so the caller can see what broke.
func NewCollaboratorError(err error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Message: err.Error(),
	}
}

// IsNotFound reports whether err carries a 404 status.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusNotFound
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
