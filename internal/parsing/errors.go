// Package parsing extracts structured idea records from the ideas markdown document.
package parsing

import "fmt"

// LoadError represents an error reading the ideas document from disk
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to read ideas file %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to read ideas file %s", e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ParseError represents an error parsing the ideas document or one of its blocks
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
