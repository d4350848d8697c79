package emi

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every InputValidationError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InputValidationError reports an input that cannot produce a meaningful
// installment: unparsable text, a negative amount, or a non-positive term.
type InputValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is lets callers test for ErrInvalidInput without knowing the field.
func (e *InputValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInputValidationError builds an InputValidationError.
func NewInputValidationError(field, value, reason string) *InputValidationError {
	return &InputValidationError{Field: field, Value: value, Reason: reason}
}

// FieldOf returns the offending field name if err is an InputValidationError.
func FieldOf(err error) (string, bool) {
	var validationErr *InputValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Field, true
	}
	return "", false
}
