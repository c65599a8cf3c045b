package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rolodex/internal/contact"
	"github.com/mrz1836/rolodex/internal/output"
	"github.com/mrz1836/rolodex/internal/present"
	"github.com/mrz1836/rolodex/internal/screen"
	rdxerr "github.com/mrz1836/rolodex/pkg/errors"
)

// contactCmd is the parent command for contact operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var contactCmd = &cobra.Command{
	Use:     "contact",
	Aliases: []string{"contacts", "c"},
	Short:   "Show and manage contacts",
	Long: `Show and manage the contacts stored in the encrypted contact slot.

A contact is addressed by its id or, when unambiguous, by its name.`,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var (
	contactListCmd = &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Long: `List stored contacts in stored order.

Example:
  rolodex contact list
  rolodex contact list --favourites -o json`,
		Args: cobra.NoArgs,
		RunE: runContactList,
	}

	contactShowCmd = &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show a contact's detail screen",
		Args:  cobra.ExactArgs(1),
		RunE:  runContactShow,
	}

	contactFavoriteCmd = &cobra.Command{
		Use:     "favorite <id|name>",
		Aliases: []string{"favourite", "star"},
		Short:   "Toggle a contact's favourite star",
		Args:    cobra.ExactArgs(1),
		RunE:    runContactFavorite,
	}

	contactSendCmd = &cobra.Command{
		Use:   "send <id|name>",
		Short: "Hand a contact's address to the send flow",
		Long: `Hand one of a contact's lightning or on-chain addresses to the send flow.
NIP-05 identifiers and nostr keys are display-only and cannot be sent to.

Example:
  rolodex contact send alice
  rolodex contact send alice --kind onchain --index 1`,
		Args: cobra.ExactArgs(1),
		RunE: runContactSend,
	}

	contactQRCmd = &cobra.Command{
		Use:   "qr <id|name>",
		Short: "Show one of a contact's values as a QR code",
		Args:  cobra.ExactArgs(1),
		RunE:  runContactQR,
	}

	contactEditCmd = &cobra.Command{
		Use:   "edit <id|name>",
		Short: "Hand a contact to the edit flow",
		Long: `Print the contact prefilled for editing. Save the edited record to a file
and apply it with 'rolodex contact update --file'.`,
		Args: cobra.ExactArgs(1),
		RunE: runContactEdit,
	}
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	listFavourites bool
	entryKind      string
	entryIndex     int
)

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(contactCmd)
	contactCmd.AddCommand(contactListCmd, contactShowCmd, contactFavoriteCmd,
		contactSendCmd, contactQRCmd, contactEditCmd)

	contactListCmd.Flags().BoolVar(&listFavourites, "favourites", false, "only list favourite contacts")
	for _, c := range []*cobra.Command{contactSendCmd, contactQRCmd} {
		c.Flags().StringVarP(&entryKind, "kind", "k", string(contact.KindLightning),
			"address kind: lightning, onchain, nip05, nostrPubkey")
		c.Flags().IntVarP(&entryIndex, "index", "i", 0, "position of the address within its kind")
	}
}

// contactListItem is one row of 'contact list'.
type contactListItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsFavourite bool   `json:"isFavourite"`
	Lightning   int    `json:"lightning"`
	Onchain     int    `json:"onchain"`
	NIP05       int    `json:"nip05"`
	NostrPubkey int    `json:"nostrPubkey"`
}

func runContactList(cmd *cobra.Command, _ []string) error {
	cc, err := contactsContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	records, err := cc.Contacts.LoadCollection(cmd.Context())
	if err != nil {
		return err
	}
	if listFavourites {
		records = records.Favourites()
	}

	items := make([]contactListItem, 0, len(records))
	for _, r := range records {
		items = append(items, contactListItem{
			ID:          r.ID,
			Name:        r.Name,
			IsFavourite: r.IsFavourite,
			Lightning:   len(r.LNAddress),
			Onchain:     len(r.OnchainAddress),
			NIP05:       len(r.NIP05),
			NostrPubkey: len(r.NostrNpub),
		})
	}

	w := cmd.OutOrStdout()
	if cc.Formatter.IsJSON() {
		return output.WriteJSON(w, items)
	}
	if len(items) == 0 {
		outln(w, "No contacts stored.")
		return nil
	}

	table := output.NewTable("ID", "NAME", "★", "LN", "ONCHAIN", "NIP05", "NOSTR")
	for _, it := range items {
		star := ""
		if it.IsFavourite {
			star = "★"
		}
		table.AddRow(it.ID, it.Name, star, strconv.Itoa(it.Lightning), strconv.Itoa(it.Onchain),
			strconv.Itoa(it.NIP05), strconv.Itoa(it.NostrPubkey))
	}
	return table.Render(w)
}

// openDetails loads the collection and opens the detail screen on ref.
func openDetails(cmd *cobra.Command, cc *CommandContext, ref string) (*screen.ContactDetails, error) {
	records, err := cc.Contacts.LoadCollection(cmd.Context())
	if err != nil {
		return nil, err
	}
	rec, err := resolveContact(records, ref)
	if err != nil {
		return nil, err
	}
	return screen.NewContactDetails(&rec, screen.Deps{
		Store:     cc.Contacts,
		Navigator: cc.Navigator,
		Formatter: present.NewFormatter(cc.Truncator()),
		Log:       cc.Logger,
	})
}

func runContactShow(cmd *cobra.Command, args []string) error {
	cc, err := contactsContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	details, err := openDetails(cmd, cc, args[0])
	if err != nil {
		return err
	}
	return details.Render(cmd.OutOrStdout(), cc.Formatter.Format())
}

func runContactFavorite(cmd *cobra.Command, args []string) error {
	cc, err := contactsContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	details, err := openDetails(cmd, cc, args[0])
	if err != nil {
		return err
	}
	if err := details.ToggleFavorite(cmd.Context()); err != nil {
		return err
	}

	if err := details.Render(cmd.OutOrStdout(), cc.Formatter.Format()); err != nil {
		return err
	}
	if !cc.Formatter.IsJSON() {
		rec := details.Contact()
		if rec.IsFavourite {
			cc.Messenger(cmd).Successf("%s added to favourites", rec.Name)
		} else {
			cc.Messenger(cmd).Successf("%s removed from favourites", rec.Name)
		}
	}
	return nil
}

func parseEntryKind() (contact.Kind, error) {
	kind, ok := contact.ParseKind(entryKind)
	if !ok {
		return "", rdxerr.WithSuggestion(
			rdxerr.WithDetails(rdxerr.ErrInvalidInput, map[string]string{"kind": entryKind}),
			"use one of: lightning, onchain, nip05, nostrPubkey",
		)
	}
	return kind, nil
}

func runContactSend(cmd *cobra.Command, args []string) error {
	kind, err := parseEntryKind()
	if err != nil {
		return err
	}

	cc, err := contactsContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	details, err := openDetails(cmd, cc, args[0])
	if err != nil {
		return err
	}
	if err := details.Send(cmd.Context(), kind, entryIndex); err != nil {
		if rdxerr.Is(err, rdxerr.ErrNotSendable) {
			return rdxerr.WithSuggestion(err, fmt.Sprintf("show it instead: rolodex contact qr %s --kind %s", args[0], kind))
		}
		return err
	}
	return nil
}

func runContactQR(cmd *cobra.Command, args []string) error {
	kind, err := parseEntryKind()
	if err != nil {
		return err
	}

	cc, err := contactsContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	details, err := openDetails(cmd, cc, args[0])
	if err != nil {
		return err
	}
	return details.ShowQR(cmd.Context(), kind, entryIndex)
}

func runContactEdit(cmd *cobra.Command, args []string) error {
	cc, err := contactsContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	details, err := openDetails(cmd, cc, args[0])
	if err != nil {
		return err
	}
	return details.Edit(cmd.Context())
}
