package generator

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	timestampIDPrefix = "sample"
	uuidIDPrefix      = "cv"
)

// nextID returns the identifier for the record at index within the current batch.
func (g *Generator) nextID(index int) (string, error) {
	switch g.opts.IDStyle {
	case IDStyleUUID:
		id, err := uuid.NewRandomFromReader(rngReader{g.rng})
		if err != nil {
			return "", fmt.Errorf("failed to generate uuid: %w", err)
		}
		return fmt.Sprintf("%s-%s", uuidIDPrefix, id), nil
	default:
		return TimestampID(g.now().UnixMicro(), index), nil
	}
}

// TimestampID formats "sample-<seconds.fraction>-<index>" from a microsecond timestamp.
// Whole seconds keep one fractional digit, as in "1700000000.0".
func TimestampID(unixMicro int64, index int) string {
	seconds := strconv.FormatFloat(float64(unixMicro)/1e6, 'f', -1, 64)
	if !strings.Contains(seconds, ".") {
		seconds += ".0"
	}
	return fmt.Sprintf("%s-%s-%d", timestampIDPrefix, seconds, index)
}

// rngReader adapts a seeded *rand.Rand to io.Reader so uuids stay reproducible.
type rngReader struct {
	rng *rand.Rand
}

func (r rngReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], r.rng.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}
