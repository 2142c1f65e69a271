package rendering

import (
	"math/rand/v2"
	"testing"

	"github.com/jonathan/cvgen/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *types.CVRecord {
	return &types.CVRecord{
		ID:        "sample-1760869800.5-0",
		Name:      "Lucía García Pérez",
		Role:      "UX/UI Designer",
		Email:     "lucía.garcía@email.com",
		Phone:     "+34 612 345 678",
		Location:  "Gràcia, Barcelona",
		LinkedIn:  "linkedin.com/in/lucía-garcía",
		GitHub:    "github.com/lucíagarcía",
		Portfolio: "lucíagarcía.dev",
		Summary:   "Experienced UX/UI Designer with 5+ years in Barcelona's tech ecosystem.",
		Skills:    []string{"React", "TypeScript"},
		Experience: []types.ExperienceEntry{
			{Company: "Glovo", Position: "UX/UI Designer", Duration: "2023 - Present", Location: "Barcelona, Spain", Description: "Leading development initiatives at Glovo."},
		},
		Education: []types.EducationEntry{
			{Degree: "Master's in Computer Science", School: "ESADE Business School", Year: "2017", Details: "Specialized in software development and modern technologies"},
		},
		Languages:       []string{"Spanish (Native)"},
		Certifications:  []string{"AWS Certified Developer"},
		ProfileImageURL: "https://randomuser.me/api/portraits/women/12.jpg",
	}
}

func TestRenderHTML_AllLayouts(t *testing.T) {
	for _, layout := range Layouts {
		t.Run(layout.Name, func(t *testing.T) {
			html, err := RenderHTML(testRecord(), layout)
			require.NoError(t, err)

			assert.Contains(t, html, "<!DOCTYPE html>")
			assert.Contains(t, html, `data-layout="`+layout.Name+`"`)
			assert.Contains(t, html, "Lucía García Pérez")
			assert.Contains(t, html, "2023 - Present")
			assert.Contains(t, html, "ESADE Business School")
			assert.Contains(t, html, `src="https://randomuser.me/api/portraits/women/12.jpg"`)
			assert.Contains(t, html, string(layout.Primary))
			assert.NotContains(t, html, "ZgotmplZ")
		})
	}
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	record := testRecord()
	record.Summary = `<script>alert("x")</script>`

	html, err := RenderHTML(record, Layouts[0])
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderHTML_InitialsWithoutPhoto(t *testing.T) {
	record := testRecord()
	record.ProfileImageURL = ""

	html, err := RenderHTML(record, Layouts[2])
	require.NoError(t, err)
	assert.Contains(t, html, `<div class="initials">LG</div>`)
}

func TestRenderHTML_Errors(t *testing.T) {
	_, err := RenderHTML(nil, Layouts[0])
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)

	_, err = RenderHTML(testRecord(), Layout{Name: "missing"})
	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
}

func TestLayoutByName(t *testing.T) {
	layout, err := LayoutByName("sidebar-right")
	require.NoError(t, err)
	assert.Equal(t, "sidebar-right", layout.Name)

	layout, err = LayoutByName(" Timeline ")
	require.NoError(t, err)
	assert.Equal(t, "header-top", layout.Name)

	_, err = LayoutByName("origami")
	assert.Error(t, err)
}

func TestRandomLayout(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[RandomLayout(rng).Name] = true
	}
	assert.Len(t, seen, len(Layouts))
}
