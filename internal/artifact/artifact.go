package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cvgen/internal/types"
)

// DefaultPath is where a batch is written when no output path is given.
const DefaultPath = "sample_cvs.json"

// Encode renders records as an indented JSON array. Non-ASCII and
// HTML-significant characters are written verbatim.
func Encode(records []types.CVRecord) ([]byte, error) {
	if records == nil {
		records = []types.CVRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes records and writes them to path, creating parent directories.
func Write(path string, records []types.CVRecord) error {
	content, err := Encode(records)
	if err != nil {
		return &WriteError{Path: path, Message: "failed to marshal records", Cause: err}
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return &WriteError{Path: outputDir, Message: "failed to create output directory", Cause: err}
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return &WriteError{Path: path, Message: "failed to write", Cause: err}
	}
	return nil
}

// Load reads a batch file written by Write.
func Load(path string) ([]types.CVRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Decode(content)
}

// Decode parses a JSON array of CV records.
func Decode(content []byte) ([]types.CVRecord, error) {
	var records []types.CVRecord
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}
	return records, nil
}
