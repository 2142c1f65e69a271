// Package artifact reads and writes CV batch files.
package artifact

import "fmt"

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// WriteError represents an error encoding or writing a batch file
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error: %s %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("write error: %s %s", e.Message, e.Path)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
