package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the resource already exists or a duplicate is pending.
var ErrConflict = errors.New("resource already exists")

// ErrUnauthorized indicates a missing or rejected credential.
var ErrUnauthorized = errors.New("unauthenticated")

// ErrForbidden indicates the caller may not perform the operation, including cross-tenant access.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidState indicates a business rule refused the operation in the current state.
var ErrInvalidState = errors.New("invalid state")

// ErrInternal indicates a store or identity provider failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP status and a client facing message alongside the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the sentinel implied by the status code, so an
// AppError wrapping a driver error still reports as ErrInternal.
func (e *AppError) Is(target error) bool {
	return sentinelFor(e.Code) == target
}

func sentinelFor(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusInternalServerError:
		return ErrInternal
	default:
		return nil
	}
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewConflictError reports duplicates with 400, which is what clients of the
// request API already expect.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrConflict}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

// NewInvalidStateError is surfaced as 403; the state rule is a business refusal.
func NewInvalidStateError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrInvalidState}
}

func NewInternalServerError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: errors.Join(ErrInternal, err)}
}
