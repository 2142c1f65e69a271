// Package validation checks generated CV batches against the generator's invariants.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/cvgen/internal/types"
)

// Violation types.
const (
	TypeField           = "field"
	TypeDuplicateID     = "duplicate_id"
	TypeSurnames        = "surnames"
	TypeSkillCount      = "skill_count"
	TypeDuplicateSkill  = "duplicate_skill"
	TypeExperienceCount = "experience_count"
	TypeDuration        = "duration"
	TypeTimestamp       = "timestamp"
)

// Severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

const currentTenureCap = 3

// Options carries the bounds a batch was generated with.
// A zero bound is not checked; either bound may be given alone.
type Options struct {
	MinSkills int
	MaxSkills int
}

// ValidateBatch checks every record and returns all violations found.
// A batch without violations yields an empty, non-nil Violations.
func ValidateBatch(records []types.CVRecord, opts Options) *types.Violations {
	result := &types.Violations{Violations: []types.Violation{}}
	seen := make(map[string]int, len(records))

	for i := range records {
		record := &records[i]
		if first, dup := seen[record.ID]; dup && record.ID != "" {
			result.Violations = append(result.Violations, types.Violation{
				RecordID: record.ID,
				Index:    i,
				Type:     TypeDuplicateID,
				Severity: SeverityError,
				Details:  fmt.Sprintf("id already used by record %d", first),
			})
		} else {
			seen[record.ID] = i
		}
		result.Violations = append(result.Violations, ValidateRecord(i, record, opts)...)
	}
	return result
}

// ValidateRecord checks a single record.
func ValidateRecord(index int, record *types.CVRecord, opts Options) []types.Violation {
	var violations []types.Violation
	add := func(kind, severity, details string) {
		violations = append(violations, types.Violation{
			RecordID: record.ID,
			Index:    index,
			Type:     kind,
			Severity: severity,
			Details:  details,
		})
	}

	if err := record.Validate(); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				add(TypeField, SeverityError, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
		} else {
			add(TypeField, SeverityError, err.Error())
		}
	}

	parts := strings.Fields(record.Name)
	if len(parts) < 3 {
		add(TypeSurnames, SeverityError, fmt.Sprintf("name %q does not carry two surnames", record.Name))
	} else if parts[len(parts)-2] == parts[len(parts)-1] {
		add(TypeSurnames, SeverityError, fmt.Sprintf("surnames in %q are identical", record.Name))
	}

	if n := len(record.Skills); opts.MinSkills > 0 && n < opts.MinSkills {
		add(TypeSkillCount, SeverityError, fmt.Sprintf("%d skills, fewer than the minimum %d", n, opts.MinSkills))
	}
	if n := len(record.Skills); opts.MaxSkills > 0 && n > opts.MaxSkills {
		add(TypeSkillCount, SeverityError, fmt.Sprintf("%d skills, more than the maximum %d", n, opts.MaxSkills))
	}
	skills := make(map[string]struct{}, len(record.Skills))
	for _, s := range record.Skills {
		if _, dup := skills[s]; dup {
			add(TypeDuplicateSkill, SeverityError, fmt.Sprintf("skill %q repeated", s))
		}
		skills[s] = struct{}{}
	}

	years, err := ParseExperienceYears(record.ExperienceYears)
	if err != nil {
		add(TypeExperienceCount, SeverityError, err.Error())
		return violations
	}

	wantEntries := 1
	if years > currentTenureCap {
		wantEntries = 2
	}
	if len(record.Experience) != wantEntries {
		add(TypeExperienceCount, SeverityError, fmt.Sprintf("%d years of experience needs %d entries, got %d", years, wantEntries, len(record.Experience)))
	}

	created, err := time.Parse(time.RFC3339Nano, record.CreatedAt)
	if err != nil {
		add(TypeTimestamp, SeverityWarning, fmt.Sprintf("createdAt %q is not RFC 3339; durations not checked", record.CreatedAt))
		return violations
	}
	year := created.Year()

	if len(record.Experience) > 0 {
		want := fmt.Sprintf("%d - Present", year-min(years, currentTenureCap))
		if got := record.Experience[0].Duration; got != want {
			add(TypeDuration, SeverityError, fmt.Sprintf("current position duration %q, want %q", got, want))
		}
	}
	if len(record.Experience) > 1 {
		want := fmt.Sprintf("%d - %d", year-years, year-currentTenureCap)
		if got := record.Experience[1].Duration; got != want {
			add(TypeDuration, SeverityError, fmt.Sprintf("previous position duration %q, want %q", got, want))
		}
	}

	return violations
}

// ParseExperienceYears parses "<n> years".
func ParseExperienceYears(s string) (int, error) {
	n, ok := strings.CutSuffix(s, " years")
	if !ok {
		return 0, fmt.Errorf("experienceYears %q is not of the form \"<n> years\"", s)
	}
	years, err := strconv.Atoi(n)
	if err != nil || years < 0 {
		return 0, fmt.Errorf("experienceYears %q is not a non-negative count", s)
	}
	return years, nil
}
