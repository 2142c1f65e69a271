package generator

import (
	"fmt"
	"time"

	"github.com/jonathan/cvgen/internal/tables"
)

// ID styles understood by the generator.
const (
	IDStyleTimestamp = "timestamp"
	IDStyleUUID      = "uuid"
)

// Sampling defaults.
const (
	DefaultMinSkills    = 5
	DefaultMaxSkills    = 10
	DefaultMinYears     = 3
	DefaultMaxYears     = 12
	DefaultMinCompanies = 2
	DefaultMaxCompanies = 4

	// currentTenureCap is the longest tenure attributed to the current position.
	currentTenureCap = 3

	minGraduationYear = 2015
	maxGraduationYear = 2020
)

// Options controls the sampling ranges of a Generator.
// Ranges are inclusive on both ends.
type Options struct {
	MinSkills    int
	MaxSkills    int
	MinYears     int
	MaxYears     int
	MinCompanies int
	MaxCompanies int
	IDStyle      string

	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the compiled-in sampling ranges.
func DefaultOptions() Options {
	return Options{
		MinSkills:    DefaultMinSkills,
		MaxSkills:    DefaultMaxSkills,
		MinYears:     DefaultMinYears,
		MaxYears:     DefaultMaxYears,
		MinCompanies: DefaultMinCompanies,
		MaxCompanies: DefaultMaxCompanies,
		IDStyle:      IDStyleTimestamp,
		Now:          time.Now,
	}
}

// Validate checks that every range is non-empty and satisfiable by the reference tables.
func (o Options) Validate() error {
	if err := checkRange("skills", o.MinSkills, o.MaxSkills, len(tables.Skills)); err != nil {
		return err
	}
	if err := checkRange("companies", o.MinCompanies, o.MaxCompanies, len(tables.LocalCompanies)); err != nil {
		return err
	}
	if o.MinYears < 0 || o.MaxYears < o.MinYears {
		return &OptionsError{Field: "years", Message: fmt.Sprintf("range [%d, %d] is empty or negative", o.MinYears, o.MaxYears)}
	}
	switch o.IDStyle {
	case "", IDStyleTimestamp, IDStyleUUID:
	default:
		return &OptionsError{Field: "id_style", Message: fmt.Sprintf("unknown id style %q", o.IDStyle)}
	}
	return nil
}

func checkRange(field string, lo, hi, available int) error {
	if lo < 1 || hi < lo {
		return &OptionsError{Field: field, Message: fmt.Sprintf("range [%d, %d] is empty or below 1", lo, hi)}
	}
	if hi > available {
		return &OptionsError{Field: field, Message: fmt.Sprintf("maximum %d exceeds the %d available values", hi, available)}
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.IDStyle == "" {
		o.IDStyle = IDStyleTimestamp
	}
	return o
}
