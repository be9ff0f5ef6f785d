package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-app/internal/logging"
)

func TestRun_ExitCodes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TODO_CONFIG", "")
	dbDir := t.TempDir()

	assert.Equal(t, 0, run([]string{"--db-dir", dbDir, "add", "Buy milk"}))
	assert.Equal(t, 0, run([]string{"--db-dir", dbDir, "list"}))
	assert.Equal(t, 1, run([]string{"--db-dir", dbDir, "add", "  "}))
	assert.Equal(t, 1, run([]string{"--db-dir", dbDir, "bogus"}))
}

func TestRun_StorageUnavailable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TODO_CONFIG", "")
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	assert.Equal(t, 1, run([]string{"--db-dir", blocker, "list"}))
}

func TestRun_DebugLogSkipsInputMistakes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TODO_CONFIG", "")
	t.Setenv("TODO_DEBUG", "1")
	var debug bytes.Buffer
	prev := logging.SetOutput(&debug)
	t.Cleanup(func() { logging.SetOutput(prev) })

	assert.Equal(t, 1, run([]string{"--db-dir", t.TempDir(), "add", "  "}))
	assert.NotContains(t, debug.String(), "VALIDATION_FAILED")

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	assert.Equal(t, 1, run([]string{"--db-dir", blocker, "list"}))
	assert.Contains(t, debug.String(), "[STORAGE_UNAVAILABLE]")
}
