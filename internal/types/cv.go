// Package types provides type definitions for the CV records produced by the generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// CVRecord represents a single synthesized résumé
type CVRecord struct {
	ID              string            `json:"id" validate:"required"`
	Name            string            `json:"name" validate:"required"`
	Role            string            `json:"role" validate:"required"`
	Email           string            `json:"email" validate:"required,email"`
	Phone           string            `json:"phone" validate:"required"`
	Location        string            `json:"location" validate:"required"`
	LinkedIn        string            `json:"linkedin" validate:"required"`
	GitHub          string            `json:"github" validate:"required"`
	Portfolio       string            `json:"portfolio" validate:"required"`
	Summary         string            `json:"summary" validate:"required"`
	Skills          []string          `json:"skills" validate:"required,min=1,unique,dive,required"`
	Experience      []ExperienceEntry `json:"experience" validate:"required,min=1,max=2,dive"`
	Education       []EducationEntry  `json:"education" validate:"required,len=1,dive"`
	Languages       []string          `json:"languages" validate:"required,min=1,dive,required"`
	Certifications  []string          `json:"certifications" validate:"required,dive,required"`
	Companies       []string          `json:"companies" validate:"required,min=1,unique"`
	University      string            `json:"university" validate:"required"`
	ExperienceYears string            `json:"experienceYears" validate:"required"`
	CreatedAt       string            `json:"createdAt" validate:"required"`
	Type            string            `json:"type" validate:"required"`
	Status          string            `json:"status" validate:"required"`
	ProfileImageURL string            `json:"profileImageUrl" validate:"required,url"`
}

// ExperienceEntry represents one position held by the candidate
type ExperienceEntry struct {
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position" validate:"required"`
	Duration    string `json:"duration" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// EducationEntry represents one degree
type EducationEntry struct {
	Degree  string `json:"degree" validate:"required"`
	School  string `json:"school" validate:"required"`
	Year    string `json:"year" validate:"required,numeric,len=4"`
	Details string `json:"details" validate:"required"`
}

// Record type and status tags written by the generator.
const (
	TypeGenerated   = "generated"
	StatusCompleted = "completed"
)

// CurrentJob returns the most recent experience entry, or nil when there is none.
func (r *CVRecord) CurrentJob() *ExperienceEntry {
	if len(r.Experience) == 0 {
		return nil
	}
	return &r.Experience[0]
}

// Validate validates the CVRecord using the validator.
func (r *CVRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
