// Package types provides type definitions for the CV records produced by the generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

// LibraryStatus summarizes a collection of CV records
type LibraryStatus struct {
	Total       int            `json:"total"`
	ByType      map[string]int `json:"by_type"`
	ByRole      map[string]int `json:"by_role"`
	LastCreated string         `json:"last_created,omitempty"`
}

// Violation represents a single invariant failure found in a CV record
type Violation struct {
	RecordID string `json:"record_id,omitempty"`
	Index    int    `json:"index"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
}

// Violations represents a collection of invariant failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any violation has error severity
func (v *Violations) HasErrors() bool {
	if v == nil {
		return false
	}
	for _, violation := range v.Violations {
		if violation.Severity == "error" {
			return true
		}
	}
	return false
}
