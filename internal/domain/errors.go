package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or not positive.
	ErrInvalidID = errors.New("invalid ID")

	ErrInvalidRole = errors.New("invalid role")

	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrEmptyPassword = errors.New("password cannot be empty")
	// ErrPasswordTooLong guards bcrypt's 72 byte input limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes long")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrEmptyURL        = errors.New("url cannot be empty")
	ErrNegativeNumber  = errors.New("value cannot be negative")
	ErrMissingCompany  = errors.New("company id is required")
	ErrMissingOwner    = errors.New("owner user id is required")

	// ErrNotOwner is returned when the acting user does not own the resource
	// being read or mutated.
	ErrNotOwner = errors.New("resource is not owned by the caller")
)

// ValidationError describes which field failed validation. It wraps one of the
// sentinel errors above so callers can still match with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
