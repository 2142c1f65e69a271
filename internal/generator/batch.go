package generator

import (
	"fmt"

	"github.com/jonathan/cvgen/internal/types"
)

// ProgressFunc is called after each record is appended to a batch.
// index is zero-based.
type ProgressFunc func(index int, record *types.CVRecord)

// Batch generates count records in order, each with a unique identifier.
// Records are never modified after they are handed to progress.
func (g *Generator) Batch(count int, progress ProgressFunc) ([]types.CVRecord, error) {
	if count < 0 {
		return nil, &OptionsError{Field: "count", Message: fmt.Sprintf("must be non-negative, got %d", count)}
	}

	records := make([]types.CVRecord, 0, count)
	seen := make(map[string]struct{}, count)
	for i := range count {
		id, err := g.nextID(i)
		if err != nil {
			return nil, &BatchError{Message: fmt.Sprintf("failed to assign id to record %d", i), Cause: err}
		}
		if _, dup := seen[id]; dup {
			return nil, &BatchError{Message: fmt.Sprintf("duplicate id %s at record %d", id, i)}
		}
		seen[id] = struct{}{}

		records = append(records, g.Record(id))
		if progress != nil {
			progress(i, &records[i])
		}
	}
	return records, nil
}
