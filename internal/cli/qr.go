package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rolodex/internal/handoff"
	rdxerr "github.com/mrz1836/rolodex/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var qrCmd = &cobra.Command{
	Use:   "qr <value>",
	Short: "Show a value as a QR code",
	Long: `Show any value, such as an invoice or an address, as a terminal QR code
with the value printed underneath.

Example:
  rolodex qr bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq
  rolodex qr alice@getalby.com --jumbo --hide-text`,
	Args: cobra.ExactArgs(1),
	RunE: runQR,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	qrHideText bool
	qrJumbo    bool
)

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(qrCmd)
	qrCmd.Flags().BoolVar(&qrHideText, "hide-text", false, "do not print the value under the code")
	qrCmd.Flags().BoolVar(&qrJumbo, "jumbo", false, "print the value as a large label above the code")
}

func runQR(cmd *cobra.Command, args []string) error {
	value := strings.TrimSpace(args[0])
	if value == "" {
		return rdxerr.WithSuggestion(rdxerr.ErrInvalidInput, "nothing to encode")
	}

	cc := commandContext(cmd)
	return cc.Navigator.Navigate(cmd.Context(), handoff.QRRequest{
		Value:      value,
		HideText:   qrHideText,
		JumboLabel: qrJumbo,
	})
}
