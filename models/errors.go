package models

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel matched by every [ValidationError].
var ErrValidation = errors.New("validation error")

// ValidationError describes invalid input: a missing join or identifier
// column, an empty table where data is required, or a malformed row.
//
// Side names the dataset the problem belongs to ("a", "b", or empty when
// only one dataset is involved) so that callers can report which input
// caused the failure.
type ValidationError struct {
	Side   string
	Field  string
	Reason string
}

// NewValidationError constructs a *ValidationError.
func NewValidationError(side, field, reason string) *ValidationError {
	return &ValidationError{Side: side, Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	switch {
	case e.Side != "" && e.Field != "":
		return fmt.Sprintf("validation error: dataset %s: %s: %s", e.Side, e.Field, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
	default:
		return "validation error: " + e.Reason
	}
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
