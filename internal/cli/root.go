// Package cli implements the rolodex command-line interface.
//
// This package uses global variables to manage CLI state, which is the standard
// pattern for Cobra-based CLI applications. The globals are initialized in
// PersistentPreRunE and cleaned up in PersistentPostRun.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rolodex/internal/config"
	"github.com/mrz1836/rolodex/internal/output"
	rdxerr "github.com/mrz1836/rolodex/pkg/errors"
)

var (
	// Global flags
	homeDir        string
	outputFormat   string
	verbose        bool
	storageBackend string

	// Global state initialized in PersistentPreRunE
	cfg       *config.Config
	logger    *config.Logger
	formatter *output.Formatter
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rolodex",
	Short: "A terminal contact book for your wallet",
	Long: `Rolodex shows and edits the contacts your wallet keeps in its encrypted
contact slot: lightning and on-chain addresses, NIP-05 identifiers and nostr keys.

Example:
  rolodex contact list
  rolodex contact show alice
  rolodex contact favorite alice
  rolodex contact send alice --kind lightning
  rolodex qr lnbc1... --jumbo`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initGlobals(cmd.OutOrStdout())
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup()
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		format := output.FormatText
		if formatter != nil {
			format = formatter.Format()
		}
		_ = output.FormatError(os.Stderr, err, format)
		return err
	}
	return nil
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	return rdxerr.ExitCode(err)
}

// initGlobals loads configuration, then applies environment and flags on
// top of it, and builds the logger and formatter.
func initGlobals(stdout io.Writer) error {
	home := homeDir
	if home == "" {
		home = os.Getenv(config.EnvHome)
	}
	if home == "" {
		home = config.DefaultHome()
	}
	home = config.ExpandHome(home)

	var err error
	cfg, err = config.Load(config.Path(home))
	switch {
	case err == nil:
	case os.IsNotExist(err):
		cfg = config.Defaults()
	default:
		return err
	}
	defaultLog := config.Defaults().Logging.File
	if cfg.Home == config.Defaults().Home || cfg.Home == "" {
		cfg.Home = home
	}

	config.ApplyEnvironment(cfg)

	if homeDir != "" {
		cfg.Home = homeDir
	}
	if cfg.Logging.File == defaultLog {
		cfg.Logging.File = filepath.Join(config.ExpandHome(cfg.Home), "rolodex.log")
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Logging.Level = "debug"
	}
	if outputFormat != "" && outputFormat != string(output.FormatAuto) {
		cfg.Output.DefaultFormat = outputFormat
	}
	if storageBackend != "" {
		cfg.Storage.Backend = storageBackend
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = config.NewLogger(config.ParseLogLevel(cfg.Logging.Level), cfg.Logging.File)
	if err != nil {
		logger = config.NullLogger()
	}

	formatter = output.NewFormatter(output.ParseFormat(cfg.Output.DefaultFormat), stdout)
	logger.Debug("rolodex %s home=%s storage=%s format=%s", buildInfo, cfg.Home, cfg.Storage.Backend, formatter.Format())
	return nil
}

// cleanup releases resources.
func cleanup() {
	if logger != nil {
		_ = logger.Close()
	}
}

// out is a helper for CLI output that ignores write errors (standard pattern for CLI tools).
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func out(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// outln is a helper for CLI output with newline.
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func outln(w io.Writer, args ...any) {
	fmt.Fprintln(w, args...)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "rolodex data directory (default: ~/.rolodex)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "auto", "output format: text, json, auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "contact store backend: file, keyring, memory")
}
