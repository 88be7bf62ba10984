// Package pipeline provides the high-level orchestration of the idea selection stage.
package pipeline

import "fmt"

// InputError represents a missing or unusable stage input. It carries a hint
// telling the user which earlier stage to complete.
type InputError struct {
	Message string
	Hint    string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// PersistError represents a failure writing the selection or archive documents
type PersistError struct {
	Path  string
	Cause error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

func (e *PersistError) Unwrap() error {
	return e.Cause
}
