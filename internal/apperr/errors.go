// Package apperr defines the error taxonomy shared across the service.
// Lower layers return these; the HTTP layer maps them to status codes.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername indicates a registration lost the uniqueness race
	// at the storage boundary.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials indicates the password did not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPaymentDeclined indicates the payment step resolved to a failure.
	// The cart is untouched and no order was created.
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrStorageUnavailable indicates the storage layer could not complete
	// the operation. Any partial transactional state has been rolled back.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrReconciliationRequired indicates the payment was captured but the
	// order could not be recorded. This must be surfaced distinctly: it needs
	// out-of-band resolution and is never a silent success.
	ErrReconciliationRequired = errors.New("payment captured but order not recorded")
)

// ValidationError reports malformed input. It is recovered locally and never
// reaches storage.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
