package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/rolodex/internal/config"
	"github.com/mrz1836/rolodex/internal/output"
	rdxerr "github.com/mrz1836/rolodex/pkg/errors"
)

// configCmd is the parent command for configuration operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and initialize rolodex configuration settings.`,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var (
	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration",
		Long: `Create a default configuration file at ~/.rolodex/config.yaml.

If a configuration file already exists, this command will not overwrite it
unless --force is specified.`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Display the configuration after environment variables and flags are applied.

Example:
  rolodex config show
  rolodex config show -o json`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outln(cmd.OutOrStdout(), config.Path(config.ExpandHome(cfg.Home)))
			return nil
		},
	}
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var configForce bool

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd, configPathCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite existing configuration")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configPath := config.Path(config.ExpandHome(cfg.Home))

	if _, err := os.Stat(configPath); err == nil && !configForce {
		return rdxerr.WithSuggestion(
			rdxerr.ErrGeneral,
			fmt.Sprintf("configuration already exists at %s. Use --force to overwrite.", configPath),
		)
	}

	defaults := config.Defaults()
	defaults.Home = cfg.Home
	if err := config.Save(defaults, configPath); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	w := cmd.OutOrStdout()
	out(w, "Configuration initialized at %s\n", configPath)
	outln(w)
	outln(w, "Edit this file to configure:")
	outln(w, "  - storage.backend: file (age-encrypted), keyring (OS keychain) or memory")
	outln(w, "  - storage.key: slot holding the contacts (default zeus-contacts)")
	outln(w, "  - display.truncate_above/head/tail: address shortening")
	outln(w, "  - output.default_format: Output format (text/json)")
	outln(w, "  - logging.level: Log level (off/error/debug)")
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if formatter.IsJSON() {
		return output.WriteJSON(w, cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
