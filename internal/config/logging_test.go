package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rolodex/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected config.LogLevel
	}{
		{"off", config.LogLevelOff},
		{"NONE", config.LogLevelOff},
		{"error", config.LogLevelError},
		{"  debug  ", config.LogLevelDebug},
		{"warn", config.LogLevelError},
		{"", config.LogLevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, config.ParseLogLevel(tt.input))
		})
	}

	assert.Equal(t, "off", config.LogLevelOff.String())
	assert.Equal(t, "debug", config.LogLevelDebug.String())
	assert.Equal(t, "error", config.LogLevel(99).String())
}

func TestWriterLogger_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := config.NewWriterLogger(config.LogLevelError, &buf)

	logger.Debug("hidden %d", 1)
	logger.Error("updating contact %s: %v", "a", "disk full")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[ERROR] updating contact a: disk full")

	logger.SetLevel(config.LogLevelDebug)
	logger.Debug("now visible")
	assert.Contains(t, buf.String(), "[DEBUG] now visible")
	assert.Equal(t, config.LogLevelDebug, logger.Level())

	require.NoError(t, logger.Close())
}

func TestNullLogger(t *testing.T) {
	t.Parallel()

	logger := config.NullLogger()
	logger.Error("dropped")
	assert.Equal(t, config.LogLevelOff, logger.Level())
	require.NoError(t, logger.Close())
}

func TestNewLogger_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "rolodex.log")
	logger, err := config.NewLogger(config.LogLevelDebug, path)
	require.NoError(t, err)

	logger.Debug("loaded %d contacts", 2)
	require.NoError(t, logger.Close())
	logger.Error("after close is dropped")

	data, err := os.ReadFile(path) //nolint:gosec // G304: Test path from t.TempDir()
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[DEBUG] loaded 2 contacts")
}

func TestNewLogger_OffOrEmptyPathWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logger, err := config.NewLogger(config.LogLevelOff, filepath.Join(dir, "x.log"))
	require.NoError(t, err)
	logger.Error("nothing")
	require.NoError(t, logger.Close())

	_, err = os.Stat(filepath.Join(dir, "x.log"))
	require.ErrorIs(t, err, os.ErrNotExist)

	logger, err = config.NewLogger(config.LogLevelDebug, "")
	require.NoError(t, err)
	logger.Error("nothing")
}
