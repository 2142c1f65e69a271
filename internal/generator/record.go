package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/cvgen/internal/tables"
	"github.com/jonathan/cvgen/internal/types"
)

const (
	emailDomain    = "email.com"
	portraitURLFmt = "https://randomuser.me/api/portraits/%s/%d.jpg"
)

// Record assembles a fully populated CV record with the given identifier.
func (g *Generator) Record(id string) types.CVRecord {
	name := g.Name()
	role := g.pick(tables.Roles)
	years := g.between(g.opts.MinYears, g.opts.MaxYears)
	neighborhood := g.pick(tables.Neighborhoods)

	skills := g.sample(tables.Skills, g.between(g.opts.MinSkills, g.opts.MaxSkills))
	companies := g.sample(tables.LocalCompanies, g.between(g.opts.MinCompanies, g.opts.MaxCompanies))

	summary := fmt.Sprintf(
		"Experienced %s with %d+ years in Barcelona's tech ecosystem. Graduated from %s and built expertise at companies like %s. Passionate about technology innovation and delivering high-quality solutions.",
		role, years, g.pick(tables.Universities), strings.Join(companies[:min(2, len(companies))], ", "),
	)

	first := strings.ToLower(name.First)
	last := strings.ToLower(name.LastName1)

	return types.CVRecord{
		ID:              id,
		Name:            name.Full(),
		Role:            role,
		Email:           fmt.Sprintf("%s.%s@%s", first, last, emailDomain),
		Phone:           g.phone(),
		Location:        neighborhood + ", Barcelona",
		LinkedIn:        fmt.Sprintf("linkedin.com/in/%s-%s", first, last),
		GitHub:          fmt.Sprintf("github.com/%s%s", first, last),
		Portfolio:       fmt.Sprintf("%s%s.dev", first, last),
		Summary:         summary,
		Skills:          skills,
		Experience:      g.Experience(role, years),
		Education:       g.Education(),
		Languages:       append([]string(nil), tables.Languages...),
		Certifications:  append([]string(nil), tables.Certifications...),
		Companies:       companies,
		University:      g.pick(tables.Universities),
		ExperienceYears: fmt.Sprintf("%d years", years),
		CreatedAt:       g.now().Format(time.RFC3339Nano),
		Type:            types.TypeGenerated,
		Status:          types.StatusCompleted,
		ProfileImageURL: fmt.Sprintf(portraitURLFmt, tables.PortraitBucket(name.First), g.between(1, 99)),
	}
}

// phone returns a Spanish mobile number, "+34 6NN NNN NNN".
func (g *Generator) phone() string {
	return fmt.Sprintf("+34 6%d %d %d", g.between(10, 99), g.between(100, 999), g.between(100, 999))
}
