package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"1", true},
		{"true", true},
		{"YES", true},
		{"on", true},
		{"  true  ", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"", false},
		{"random", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, parseBool(tc.input))
		})
	}
}

//nolint:paralleltest // t.Setenv is incompatible with t.Parallel
func TestApplyEnvironment(t *testing.T) {
	t.Setenv(EnvHome, "/tmp/rolodex-home")
	t.Setenv(EnvStorage, " Keyring ")
	t.Setenv(EnvStorageDir, "/tmp/rolodex-store")
	t.Setenv(EnvOutputFormat, "JSON")
	t.Setenv(EnvVerbose, "yes")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvWorkFactor, "12")
	t.Setenv(EnvNoColor, "")

	cfg := Defaults()
	ApplyEnvironment(cfg)

	assert.Equal(t, "/tmp/rolodex-home", cfg.Home)
	assert.Equal(t, "keyring", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/rolodex-store", cfg.Storage.Dir)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.True(t, cfg.Output.Verbose)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 12, cfg.Storage.WorkFactor)
	assert.Equal(t, "never", cfg.Output.Color)
}

//nolint:paralleltest // t.Setenv is incompatible with t.Parallel
func TestApplyEnvironment_IgnoresBadWorkFactor(t *testing.T) {
	t.Setenv(EnvWorkFactor, "fast")

	cfg := Defaults()
	ApplyEnvironment(cfg)
	assert.Equal(t, 18, cfg.Storage.WorkFactor)
}
