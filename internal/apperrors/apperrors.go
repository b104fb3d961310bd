package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Every failure surfaced by the services wraps exactly one
// of these so callers can branch on category instead of message text.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal error")
)

// AppError carries the kind, a user-facing message and optionally the
// offending field.
type AppError struct {
	Err     error
	Message string
	Field   string
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func Validation(field, message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message, Field: field}
}

func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Err: ErrNotFound, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Err: ErrUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Err: ErrForbidden, Message: message}
}

// Internal wraps an unexpected error without leaking its details to the
// caller. The cause stays reachable through Unwrap for logging.
func Internal(cause error) *AppError {
	return &AppError{Err: fmt.Errorf("%w: %w", ErrInternal, cause), Message: "Erro interno do servidor"}
}
