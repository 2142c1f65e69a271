package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/cvgen/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleRecords() []types.CVRecord {
	return []types.CVRecord{
		{
			ID:              "sample-1-0",
			Name:            "Lucía García Pérez",
			Role:            "Data Scientist",
			Email:           "lucía.garcía@email.com",
			Location:        "Gràcia, Barcelona",
			ExperienceYears: "7 years",
			Skills:          []string{"Python", "AWS", "Docker", "Git", "Scrum", "Redis", "Flask"},
			Experience: []types.ExperienceEntry{
				{Company: "Glovo", Position: "Data Scientist", Duration: "2023 - Present"},
				{Company: "Stripe", Position: "Data Scientist", Duration: "2019 - 2023"},
			},
		},
		{
			ID:         "sample-1-1",
			Name:       "José Ruiz Moreno",
			Role:       "Tech Lead",
			Experience: []types.ExperienceEntry{{Company: "Kantox", Duration: "2024 - Present"}},
		},
	}
}

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	records := sampleRecords()
	p.PrintProgress(0, &records[0])

	assert.Equal(t, "Generated CV 1: Lucía García Pérez - Data Scientist\n", buf.String())
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchSummary(sampleRecords(), "sample_cvs.json", 5)
	output := buf.String()

	assert.Contains(t, output, "Generated 2 sample CVs and saved to sample_cvs.json")
	assert.Contains(t, output, "Sample CV summary:")
	assert.Contains(t, output, "- Lucía García Pérez: Data Scientist at Glovo")
	assert.Contains(t, output, "- José Ruiz Moreno: Tech Lead at Kantox")
}

func TestPrintBatchSummary_Limit(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchSummary(sampleRecords(), "out.json", 1)
	output := buf.String()

	assert.Contains(t, output, "Lucía García Pérez")
	assert.NotContains(t, output, "José Ruiz Moreno")

	buf.Reset()
	p.PrintBatchSummary(sampleRecords(), "out.json", 0)
	assert.NotContains(t, buf.String(), "Sample CV summary")
}

func TestPrintRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	records := sampleRecords()
	p.PrintRecord(&records[0])
	output := buf.String()

	assert.Contains(t, output, "sample-1-0")
	assert.Contains(t, output, "Data Scientist, Glovo (2023 - Present)")
	assert.Contains(t, output, "... and 2 more")

	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestPrintRecord_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRecord(nil)
	assert.Empty(t, buf.String())
}

func TestPrintLibraryStatus(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLibraryStatus(&types.LibraryStatus{
		Total:       3,
		ByType:      map[string]int{"generated": 3},
		ByRole:      map[string]int{"Tech Lead": 1, "Data Scientist": 2},
		LastCreated: "2026-10-19T10:30:00Z",
	})
	output := buf.String()

	assert.Contains(t, output, "CV LIBRARY STATUS")
	assert.Contains(t, output, "Total CVs: 3")
	assert.Contains(t, output, "2026-10-19T10:30:00Z")
	assert.Less(t, strings.Index(output, "Data Scientist"), strings.Index(output, "Tech Lead"))
}

func TestPrintViolations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolations(&types.Violations{})
	assert.Contains(t, buf.String(), "NO VIOLATIONS FOUND")

	buf.Reset()
	p.PrintViolations(&types.Violations{Violations: []types.Violation{
		{Index: 4, Type: "surnames", Severity: "error", Details: "surnames in \"Ana Ruiz Ruiz\" are identical"},
	}})
	output := buf.String()
	assert.Contains(t, output, "INVARIANT VIOLATIONS")
	assert.Contains(t, output, "[error] surnames (record 4)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Gràcia ...", truncate("Gràcia Barcelona", 10))
}
