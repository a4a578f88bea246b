package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONLinesAtConfiguredLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "paperlens.log")

	logger, closeFn, err := New(Options{Path: path, Level: "warn"})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("upload failed", zap.String("doc_id", "doc-42"))
	require.NoError(t, closeFn())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, entries, 1)
	assert.Equal(t, "upload failed", entries[0]["message"])
	assert.Equal(t, "doc-42", entries[0]["doc_id"])
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Contains(t, entries[0], "timestamp")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New(Options{Path: filepath.Join(t.TempDir(), "pl.log"), Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, _, err := New(Options{Level: "info"})
	require.Error(t, err)
}
