// Package rendering renders selection and archive markdown documents.
package rendering

import "fmt"

// DocumentError reports a failure rendering one of the markdown documents.
// Document names the template, e.g. "selection.md.tmpl".
type DocumentError struct {
	Document string
	Message  string
	Cause    error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render %s: %s: %v", e.Document, e.Message, e.Cause)
	}
	return fmt.Sprintf("render %s: %s", e.Document, e.Message)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}
