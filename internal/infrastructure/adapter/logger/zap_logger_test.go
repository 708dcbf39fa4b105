package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := NewZapLogger(Options{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	log.Debug("hidden", nil)
	log.With(map[string]any{"request_id": "abc"}).Info("listing attendees", map[string]any{"count": 3})
	require.NoError(t, log.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"message":"listing attendees"`)
	assert.Contains(t, out, `"request_id":"abc"`)
	assert.Contains(t, out, `"count":3`)
	assert.NotContains(t, out, "hidden")
}

func TestZapLoggerSetLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := NewZapLogger(Options{Level: "error", Output: path})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelError, log.GetLevel())

	child := log.With(map[string]any{"component": "search"})
	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, child.GetLevel())

	child.Debug("now visible", nil)
	require.NoError(t, log.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "now visible")
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelWarn)

	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	assert.Same(t, log, log.With(map[string]any{"a": 1}))
	assert.NoError(t, log.Flush())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, core.ParseLogLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, core.ParseLogLevel("warning"))
	assert.Equal(t, core.LogLevelError, core.ParseLogLevel("error"))
	assert.Equal(t, core.LogLevelInfo, core.ParseLogLevel("verbose"))
	assert.Equal(t, "warn", core.LogLevelWarn.String())
}
