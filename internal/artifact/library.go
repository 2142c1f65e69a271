package artifact

import (
	"time"

	"github.com/jonathan/cvgen/internal/types"
)

// Status summarizes records the way the CV library reports them:
// totals per type tag and per role, plus the most recent creation time.
func Status(records []types.CVRecord) *types.LibraryStatus {
	status := &types.LibraryStatus{
		Total:  len(records),
		ByType: make(map[string]int),
		ByRole: make(map[string]int),
	}

	var latest time.Time
	for _, record := range records {
		status.ByType[record.Type]++
		status.ByRole[record.Role]++

		created, err := time.Parse(time.RFC3339Nano, record.CreatedAt)
		if err != nil {
			continue
		}
		if created.After(latest) {
			latest = created
			status.LastCreated = record.CreatedAt
		}
	}
	return status
}
