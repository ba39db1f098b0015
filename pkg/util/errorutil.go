package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors. User-facing messages stay
// generic; diagnostic detail lives only in the wrapped Err.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Redirect   string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

func NewValidationError(message string) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest)
}

// NewUnauthenticated signals a missing session; callers redirect to target.
func NewUnauthenticated(redirect string) error {
	return &DomainError{
		Code:       "UNAUTHENTICATED",
		Message:    "authentication required",
		HTTPStatus: http.StatusFound,
		Redirect:   redirect,
	}
}

// NewForbidden signals a role or scope mismatch; callers redirect to target.
// The message never reveals why access was refused.
func NewForbidden(redirect string) error {
	return &DomainError{
		Code:       "FORBIDDEN",
		Message:    "access denied",
		HTTPStatus: http.StatusFound,
		Redirect:   redirect,
	}
}

// NewScopeNotFound covers both a nonexistent target and one outside the
// caller's department. The single message keeps the two indistinguishable.
func NewScopeNotFound() error {
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    "not found or no permission",
		HTTPStatus: http.StatusNotFound,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized)
}

func NewConflict(message string) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewScopeNotFound().(*DomainError); ok {
			return de
		}
	}
	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
