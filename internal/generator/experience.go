package generator

import (
	"fmt"
	"strings"

	"github.com/jonathan/cvgen/internal/tables"
	"github.com/jonathan/cvgen/internal/types"
)

const (
	localLocation  = "Barcelona, Spain"
	remoteLocation = "Remote"
)

// Experience builds the work history for role over years of total experience,
// most recent first. The current position always comes first; an earlier one
// is added only when years exceeds three.
func (g *Generator) Experience(role string, years int) []types.ExperienceEntry {
	currentYear := g.now().Year()

	company := g.pick(tables.LocalCompanies)
	experience := []types.ExperienceEntry{{
		Company:     company,
		Position:    role,
		Duration:    fmt.Sprintf("%d - Present", currentYear-min(years, currentTenureCap)),
		Location:    localLocation,
		Description: fmt.Sprintf("Leading development initiatives at %s. Responsible for architecture decisions, team mentoring, and delivering high-quality software solutions.", company),
	}}

	if years <= currentTenureCap {
		return experience
	}

	prevCompany := g.pick(tables.AllCompanies())
	location := remoteLocation
	if tables.IsLocalCompany(prevCompany) {
		location = localLocation
	}

	return append(experience, types.ExperienceEntry{
		Company:     prevCompany,
		Position:    stripSeniority(role),
		Duration:    fmt.Sprintf("%d - %d", currentYear-years, currentYear-currentTenureCap),
		Location:    location,
		Description: fmt.Sprintf("Developed and maintained applications at %s. Collaborated with cross-functional teams and contributed to product development.", prevCompany),
	})
}

// stripSeniority removes every seniority qualifier from a title.
func stripSeniority(role string) string {
	for _, q := range tables.SeniorityQualifiers {
		role = strings.ReplaceAll(role, q, "")
	}
	return role
}
