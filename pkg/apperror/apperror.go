// Package apperror defines the error taxonomy shared by the use cases and
// the HTTP layer. Use cases wrap failures in an AppError carrying one of the
// sentinel base errors; the error middleware translates the sentinel into an
// HTTP status and renders the client-safe portion as JSON.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Sentinel base errors. Callers classify with errors.Is against these.
var (
	ErrNotFound     = errors.New("not found")
	ErrPermission   = errors.New("permission denied")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal server error")
)

// AppError pairs a sentinel base error with a client-facing message and an
// operator-facing detail string. Err holds the underlying cause, if any; it
// is logged but never rendered to clients.
type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

// Unwrap exposes the sentinel so errors.Is matches the taxonomy, not the cause.
func (e *AppError) Unwrap() error {
	return e.BaseError
}

func newAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

// NewNotFound reports that a resource lookup matched nothing.
func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return newAppError(ErrNotFound, msg, details, nil)
}

// NewInvalidInput reports a request that failed validation.
func NewInvalidInput(details string, err error) *AppError {
	return newAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

// NewInternal wraps an unexpected failure from a driver or downstream service.
func NewInternal(details string, err error) *AppError {
	return newAppError(ErrInternal, "An internal server error occurred", details, err)
}

// NewPermissionDenied reports an operation on a resource the caller does not own.
func NewPermissionDenied(details string) *AppError {
	return newAppError(ErrPermission, "Permission denied", details, nil)
}

// ToHTTPStatus maps an error to a response status. Anything outside the
// taxonomy is treated as an internal failure.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrPermission):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// ToJSON renders the client-safe portion of the error. Details and the
// underlying cause stay out of the response body.
func (e *AppError) ToJSON() gin.H {
	return gin.H{
		"error":   e.BaseError.Error(),
		"message": e.Message,
	}
}
