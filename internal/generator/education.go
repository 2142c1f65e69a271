package generator

import (
	"strconv"

	"github.com/jonathan/cvgen/internal/tables"
	"github.com/jonathan/cvgen/internal/types"
)

const educationDetails = "Specialized in software development and modern technologies"

// Education returns exactly one education entry.
func (g *Generator) Education() []types.EducationEntry {
	school := g.pick(tables.Universities)
	year := g.between(minGraduationYear, maxGraduationYear)
	return []types.EducationEntry{{
		Degree:  g.pick(tables.Degrees),
		School:  school,
		Year:    strconv.Itoa(year),
		Details: educationDetails,
	}}
}
