package valueobject

import (
	"errors"
	"fmt"
)

// ErrInvalidStatusTransition signals a forbidden loan status change.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// ValidationError reports invalid caller input on a specific field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// DomainError reports a business rule violation on otherwise valid input.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string { return e.Reason }

// NewDomainError builds a DomainError with the given reason.
func NewDomainError(format string, args ...any) *DomainError {
	return &DomainError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDomain reports whether err is (or wraps) a DomainError.
func IsDomain(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
