package crud

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEntityType = errors.New("unknown entity type")
	ErrEntityNotFound    = errors.New("entity not found")
)

// ValidationError reports a form field that failed validation. Nothing is
// mutated when Save returns one.
type ValidationError struct {
	Field  string
	Label  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Label)
	}
	return e.Reason
}
