// Package config provides configuration management for rolodex.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	rdxerr "github.com/mrz1836/rolodex/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Version int           `yaml:"version" json:"version"`
	Home    string        `yaml:"home" json:"home"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Display DisplayConfig `yaml:"display" json:"display"`
	QR      QRConfig      `yaml:"qr" json:"qr"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// StorageConfig selects the encrypted store that holds the contacts.
type StorageConfig struct {
	// Backend is one of "file", "keyring" or "memory".
	Backend string `yaml:"backend" json:"backend"`
	// Dir holds the age-encrypted files of the file backend.
	Dir string `yaml:"dir" json:"dir"`
	// Key names the slot holding the contact collection.
	Key string `yaml:"key" json:"key"`
	// KeyringService is the keychain service name of the keyring backend.
	KeyringService string `yaml:"keyring_service" json:"keyring_service"`
	// WorkFactor is the scrypt log2(N) used when encrypting.
	WorkFactor int `yaml:"work_factor" json:"work_factor"`
}

// DisplayConfig controls how long address strings are shortened.
type DisplayConfig struct {
	TruncateAbove int    `yaml:"truncate_above" json:"truncate_above"`
	Head          int    `yaml:"head" json:"head"`
	Tail          int    `yaml:"tail" json:"tail"`
	Ellipsis      string `yaml:"ellipsis" json:"ellipsis"`
}

// QRConfig controls terminal QR rendering.
type QRConfig struct {
	Level      string `yaml:"level" json:"level"`
	QuietZone  int    `yaml:"quiet_zone" json:"quiet_zone"`
	HalfBlocks bool   `yaml:"half_blocks" json:"half_blocks"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	Color         string `yaml:"color" json:"color"`
	Verbose       bool   `yaml:"verbose" json:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// Load reads configuration from the specified file on top of Defaults.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, rdxerr.WithCause(rdxerr.ErrConfigInvalid, err)
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Storage.Backend) {
	case "file", "keyring", "memory":
	default:
		return rdxerr.WithDetails(rdxerr.ErrConfigInvalid, map[string]string{"storage.backend": c.Storage.Backend})
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return rdxerr.WithDetails(rdxerr.ErrConfigInvalid, map[string]string{"storage.key": "empty"})
	}
	if c.Storage.WorkFactor < 1 || c.Storage.WorkFactor > 30 {
		return rdxerr.WithDetails(rdxerr.ErrConfigInvalid, map[string]string{"storage.work_factor": fmt.Sprint(c.Storage.WorkFactor)})
	}
	d := c.Display
	if d.Head < 0 || d.Tail < 0 || d.TruncateAbove < d.Head+d.Tail {
		return rdxerr.WithDetails(rdxerr.ErrConfigInvalid, map[string]string{
			"display": fmt.Sprintf("truncate_above=%d head=%d tail=%d", d.TruncateAbove, d.Head, d.Tail),
		})
	}
	return nil
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the rolodex home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetStorage returns the storage configuration with paths expanded.
func (c *Config) GetStorage() StorageConfig {
	s := c.Storage
	if s.Dir == "" {
		s.Dir = filepath.Join(ExpandHome(c.Home), "store")
	}
	s.Dir = ExpandHome(s.Dir)
	return s
}

// GetDisplay returns the display configuration.
func (c *Config) GetDisplay() DisplayConfig {
	return c.Display
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// DefaultHome returns the default rolodex home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rolodex"
	}
	return filepath.Join(home, ".rolodex")
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
