package models

import (
	"errors"
	"fmt"
)

// Sentinel domain errors. Handlers map these to HTTP statuses with errors.Is,
// so services never touch the transport layer.
var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so a login response never leaks account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")

	ErrDuplicateEmail = errors.New("email already exists")

	ErrSelfDelete        = errors.New("you can't delete yourself")
	ErrAdminDelete       = errors.New("you can not delete other admins")
	ErrEmailDelivery     = errors.New("email could not be sent")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)

// ValidationError reports a missing or invalid input field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
