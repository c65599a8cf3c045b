package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome         = "ROLODEX_HOME"
	EnvStorage      = "ROLODEX_STORAGE"
	EnvStorageDir   = "ROLODEX_STORAGE_DIR"
	EnvPassphrase   = "ROLODEX_PASSPHRASE" // #nosec G101 -- false positive, this is a const name not a credential
	EnvOutputFormat = "ROLODEX_OUTPUT_FORMAT"
	EnvVerbose      = "ROLODEX_VERBOSE"
	EnvLogLevel     = "ROLODEX_LOG_LEVEL"
	EnvWorkFactor   = "ROLODEX_WORK_FACTOR"
	EnvNoColor      = "NO_COLOR"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
// The passphrase is deliberately not copied into Config; the CLI reads it
// straight from the environment when opening the store.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	if v := os.Getenv(EnvStorage); v != "" {
		cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(v))
	}

	if v := os.Getenv(EnvStorageDir); v != "" {
		cfg.Storage.Dir = strings.TrimSpace(v)
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}

	if v := os.Getenv(EnvWorkFactor); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Storage.WorkFactor = n
		}
	}

	if _, ok := os.LookupEnv(EnvNoColor); ok {
		cfg.Output.Color = "never"
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
