package config

// DefaultCollectionKey is the slot the mobile wallet stores its contacts under.
const DefaultCollectionKey = "zeus-contacts"

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.rolodex",
		Storage: StorageConfig{
			Backend:        "file",
			Dir:            "",
			Key:            DefaultCollectionKey,
			KeyringService: "rolodex",
			WorkFactor:     18,
		},
		Display: DisplayConfig{
			TruncateAbove: 15,
			Head:          10,
			Tail:          5,
			Ellipsis:      "...",
		},
		QR: QRConfig{
			Level:      "L", // low error correction is enough for addresses
			QuietZone:  1,
			HalfBlocks: true,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Color:         "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.rolodex/rolodex.log",
		},
	}
}
