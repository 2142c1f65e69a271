// Package observability provides formatted console output for the CLI commands.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cvgen/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted console output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, inner), inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads s with spaces to width runes; %-*s counts bytes, not runes.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// PrintProgress prints the line announcing a freshly generated record. index is zero-based.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(index int, record *types.CVRecord) {
	fmt.Fprintf(p.out, "Generated CV %d: %s - %s\n", index+1, record.Name, record.Role)
}

// PrintBatchSummary prints the closing lines of a batch run, listing up to limit records.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchSummary(records []types.CVRecord, path string, limit int) {
	fmt.Fprintf(p.out, "\nGenerated %d sample CVs and saved to %s\n", len(records), path)
	if limit <= 0 || len(records) == 0 {
		return
	}

	fmt.Fprintln(p.out, "\nSample CV summary:")
	for _, record := range records[:min(limit, len(records))] {
		company := ""
		if job := record.CurrentJob(); job != nil {
			company = job.Company
		}
		fmt.Fprintf(p.out, "- %s: %s at %s\n", record.Name, record.Role, company)
	}
}

// PrintRecord outputs a human-readable box describing one record.
func (p *Printer) PrintRecord(record *types.CVRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", record.Role))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", record.Email))
	sb.WriteString(fmt.Sprintf("Location: %s\n", record.Location))
	sb.WriteString(fmt.Sprintf("Years:    %s\n", record.ExperienceYears))
	sb.WriteString("\n")

	sb.WriteString("Experience:\n")
	for _, e := range record.Experience {
		sb.WriteString(fmt.Sprintf("  • %s, %s (%s)\n", e.Position, e.Company, e.Duration))
	}

	if len(record.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(record.Skills), maxItemsToShow)
		sb.WriteString("  " + strings.Join(record.Skills[:count], ", ") + "\n")
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
		}
	}

	p.printBox(record.ID, sb.String())
}

// PrintLibraryStatus outputs totals of a batch file.
func (p *Printer) PrintLibraryStatus(status *types.LibraryStatus) {
	if status == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total CVs: %d\n", status.Total))
	if status.LastCreated != "" {
		sb.WriteString(fmt.Sprintf("Latest:    %s\n", status.LastCreated))
	}

	writeCounts(&sb, "By type", status.ByType)
	writeCounts(&sb, "By role", status.ByRole)

	p.printBox("CV LIBRARY STATUS", sb.String())
}

// writeCounts lists counts in descending order, ties broken by key.
func writeCounts(sb *strings.Builder, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	sb.WriteString(fmt.Sprintf("\n%s:\n", title))
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %-32s %d\n", k, counts[k]))
	}
}

// PrintViolations outputs any invariant violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad("✅ NO VIOLATIONS FOUND", boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		sb.WriteString(fmt.Sprintf("⚠ [%s] %s (record %d)\n", v.Severity, v.Type, v.Index))
		sb.WriteString(fmt.Sprintf("  %s\n", v.Details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INVARIANT VIOLATIONS", sb.String())
}
