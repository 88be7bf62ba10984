// Package selection resolves which ranked idea is committed to the pipeline.
package selection

import (
	"errors"
	"fmt"
)

// ErrSelectionCancelled is returned when the user aborts a prompt
var ErrSelectionCancelled = errors.New("selection cancelled")

// Error represents an error that occurs while resolving a selection
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
