// Package apperror defines the application error taxonomy shared by the
// services and recovered into HTTP responses at the controller boundary.
package apperror

import (
	"errors"
	"net/http"
)

type ErrorType int

const (
	UnknownError ErrorType = iota
	ValidationError
	DuplicateIdentityError
	AuthFailedError
	ForbiddenError
	NotFoundError
	DatabaseError
)

type AppError struct {
	Type    ErrorType
	Message string
	Err     error

	// Fields holds per-field messages for errors surfaced inline on a form.
	Fields map[string]string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError, DuplicateIdentityError:
		return http.StatusBadRequest
	case AuthFailedError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(t ErrorType, message string, err error) *AppError {
	return &AppError{Type: t, Message: message, Err: err}
}

func NewValidation(message string) *AppError {
	return &AppError{Type: ValidationError, Message: message}
}

func NewDuplicateIdentity(message string) *AppError {
	return &AppError{Type: DuplicateIdentityError, Message: message}
}

func NewDuplicateIdentityFields(fields map[string]string) *AppError {
	return &AppError{
		Type:    DuplicateIdentityError,
		Message: "username or email already taken",
		Fields:  fields,
	}
}

func NewAuthFailed(message string) *AppError {
	return &AppError{Type: AuthFailedError, Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Type: ForbiddenError, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Type: NotFoundError, Message: message}
}

func NewDatabase(message string, err error) *AppError {
	return &AppError{Type: DatabaseError, Message: message, Err: err}
}

// AsAppError unwraps err into an *AppError, defaulting to UnknownError so
// callers can always switch on Type.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Type: UnknownError, Message: "internal error", Err: err}
}

// IsType reports whether err is an *AppError of the given type.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}
