package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jonathan/cvgen/internal/artifact"
	"github.com/jonathan/cvgen/internal/types"
	"github.com/stretchr/testify/require"
)

// execute runs the root command in-process and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeBatch generates a batch through the CLI and returns its path.
func writeBatch(t *testing.T, count string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "batch.json")
	_, _, err := execute(t, "generate", "-n", count, "-o", path, "--seed", "7")
	require.NoError(t, err)
	return path
}

func loadBatch(t *testing.T, path string) []types.CVRecord {
	t.Helper()

	records, err := artifact.Load(path)
	require.NoError(t, err)
	return records
}
