package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/rolodex/internal/output"
	"github.com/mrz1836/rolodex/internal/version"
)

//nolint:gochecknoglobals // Set once from main before Execute
var buildInfo = version.New("", "", "")

// SetBuildInfo records the link-time version values.
func SetBuildInfo(v, commit, date string) {
	buildInfo = version.New(v, commit, date)
	rootCmd.Version = buildInfo.String()
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rolodex version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if formatter.IsJSON() {
			return output.WriteJSON(cmd.OutOrStdout(), buildInfo)
		}
		outln(cmd.OutOrStdout(), "rolodex "+buildInfo.String())
		return nil
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(versionCmd)
}
