// Package runs locates the pipeline run directory an invocation works in.
package runs

import (
	"errors"
	"fmt"
)

// ErrNoRuns is returned when no run directory with a spec/ folder exists
var ErrNoRuns = errors.New("no runs found")

// PointerError represents an unreadable or invalid active run pointer file
type PointerError struct {
	Path    string
	Message string
	Cause   error
}

func (e *PointerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("active run pointer %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("active run pointer %s: %s", e.Path, e.Message)
}

func (e *PointerError) Unwrap() error {
	return e.Cause
}
