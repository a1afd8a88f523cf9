package merge

import (
	"errors"
	"fmt"
)

// ErrMerge is the sentinel matched by every [Error].
var ErrMerge = errors.New("merge error")

// Error reports a merge that could not be completed. Side names the dataset
// at fault ("a" or "b"), or is empty when the failure is not tied to one
// input.
type Error struct {
	Side   string
	Reason string
}

func (e *Error) Error() string {
	if e.Side == "" {
		return "merge error: " + e.Reason
	}
	return fmt.Sprintf("merge error: dataset %s: %s", e.Side, e.Reason)
}

// Unwrap lets errors.Is(err, ErrMerge) match.
func (e *Error) Unwrap() error {
	return ErrMerge
}

func newError(side, format string, args ...any) *Error {
	return &Error{Side: side, Reason: fmt.Sprintf(format, args...)}
}
