package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors. Messages are part of the API contract and must not change.
var (
	ErrUserNotFound     = NewError(ErrCodeNotFound, "User not found")
	ErrProductNotFound  = NewError(ErrCodeNotFound, "Product not found")
	ErrCartItemNotFound = NewError(ErrCodeNotFound, "Item not found in cart")
	ErrCartEmpty        = NewError(ErrCodeInvalid, "Cart is empty")
	ErrUsernameExists   = NewError(ErrCodeConflict, "Username already exists")
	ErrEmailExists      = NewError(ErrCodeConflict, "Email already exists")
	ErrTokenRequired    = NewError(ErrCodeUnauthorized, "Access token required")
	ErrInvalidPayload   = NewError(ErrCodeInvalid, "Invalid request data")
	ErrNoProfileChanges = NewError(ErrCodeInvalid, "No profile changes detected")
)

// ErrorMessage extracts the user-facing message from an error. Unclassified
// errors are reported verbatim.
func ErrorMessage(err error) string {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
