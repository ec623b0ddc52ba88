package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing credential or a credential that no longer maps to a user.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidCredentials indicates a password that does not match the stored hash.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken covers bad signatures, expired tokens and superseded refresh tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// AppError carries an HTTP status code and a client-safe message alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Errors  []string
	Err     error
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

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewBadRequestError wraps ErrValidation. details are surfaced in the errors list of the response.
func NewBadRequestError(message string, details ...string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Errors: details, Err: ErrValidation}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

// FromError resolves any error into an AppError. AppErrors anywhere in the chain win;
// bare sentinels get a generic message; anything else is an internal error whose
// detail is never exposed to the client.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, ErrValidation):
		return NewAppError(http.StatusBadRequest, "Invalid request", err)
	case errors.Is(err, ErrNotFound):
		return NewAppError(http.StatusNotFound, "Resource not found", err)
	case errors.Is(err, ErrDuplicate):
		return NewAppError(http.StatusConflict, "Resource already exists", err)
	case errors.Is(err, ErrInvalidCredentials):
		return NewAppError(http.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrUnauthorized):
		return NewAppError(http.StatusUnauthorized, "Unauthorized request", err)
	default:
		return NewAppError(http.StatusInternalServerError, "Internal server error", err)
	}
}
