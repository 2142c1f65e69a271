// Package generator synthesizes CV records from the reference tables.
package generator

import "fmt"

// OptionsError represents sampling parameters that the reference tables cannot satisfy
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("invalid generator options: %s: %s", e.Field, e.Message)
}

// BatchError represents a failure while producing a batch
type BatchError struct {
	Message string
	Cause   error
}

func (e *BatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("batch error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("batch error: %s", e.Message)
}

func (e *BatchError) Unwrap() error {
	return e.Cause
}
