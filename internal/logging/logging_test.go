package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("round started", "category", "computer")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "round started", rec["msg"])
	assert.Equal(t, "computer", rec["category"])
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "quiz.log")

	logger, closer, err := Open(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Warn("state malformed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"state malformed"`)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/state", "infoquiz", "infoquiz.log"), p)
}
