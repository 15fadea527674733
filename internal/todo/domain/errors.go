package domain

import "errors"

var (
	// ErrEmptyTask is returned when a todo is created without text.
	ErrEmptyTask = errors.New("task cannot be empty")
	// ErrNotFound is returned when no todo matches an id.
	ErrNotFound = errors.New("todo not found")
	// ErrIDAssigned is returned when a store tries to assign a second id.
	ErrIDAssigned = errors.New("todo id already assigned")
)

// ValidationError describes a request field that failed a type or
// presence check.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is, or wraps, a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrEmptyTask)
}
