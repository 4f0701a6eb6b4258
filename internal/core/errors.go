// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrAlreadyPaid  = errors.New("already paid")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func UnauthorizedError(message string) *AppError {
	return &AppError{
		Status:  http.StatusUnauthorized,
		Message: message,
		Err:     ErrUnauthorized,
	}
}

func ForbiddenError(message string) *AppError {
	return &AppError{
		Status:  http.StatusForbidden,
		Message: message,
		Err:     ErrForbidden,
	}
}

// StatusFromError maps sentinel errors to the HTTP taxonomy. Anything
// unrecognized is a dependency failure.
func StatusFromError(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenExpired):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyPaid), errors.Is(err, ErrDuplicateKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
