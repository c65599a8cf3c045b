package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rolodex/internal/contact"
	"github.com/mrz1836/rolodex/internal/output"
	rdxerr "github.com/mrz1836/rolodex/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var (
	contactUpdateCmd = &cobra.Command{
		Use:   "update --file <record.json>",
		Short: "Replace a stored contact with an edited record",
		Long: `Replace the stored contact sharing the record's id, keeping its position
in the collection. Use '-' to read the record from stdin.

Example:
  rolodex contact edit alice -o json | jq '.request.prefillContact | .name = "Alice L."' > alice.json
  rolodex contact update --file alice.json`,
		Args: cobra.NoArgs,
		RunE: runContactUpdate,
	}

	contactAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		Long: `Add a contact from a JSON record or from flags. A new id is assigned
when the record has none.

Example:
  rolodex contact add --name Alice --ln alice@getalby.com
  rolodex contact add --file carol.json`,
		Args: cobra.NoArgs,
		RunE: runContactAdd,
	}
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	recordFile     string
	addName        string
	addDescription string
	addPhoto       string
	addFavourite   bool
	addLN          []string
	addOnchain     []string
	addNIP05       []string
	addNpub        []string
)

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	contactCmd.AddCommand(contactUpdateCmd, contactAddCmd)

	contactUpdateCmd.Flags().StringVarP(&recordFile, "file", "f", "", "edited contact record (JSON), '-' for stdin")
	_ = contactUpdateCmd.MarkFlagRequired("file")

	contactAddCmd.Flags().StringVarP(&recordFile, "file", "f", "", "contact record (JSON), '-' for stdin")
	contactAddCmd.Flags().StringVar(&addName, "name", "", "display name")
	contactAddCmd.Flags().StringVar(&addDescription, "description", "", "free-text description")
	contactAddCmd.Flags().StringVar(&addPhoto, "photo", "", "photo URI")
	contactAddCmd.Flags().BoolVar(&addFavourite, "favourite", false, "star the contact")
	contactAddCmd.Flags().StringSliceVar(&addLN, "ln", nil, "lightning address (repeatable)")
	contactAddCmd.Flags().StringSliceVar(&addOnchain, "onchain", nil, "on-chain address (repeatable)")
	contactAddCmd.Flags().StringSliceVar(&addNIP05, "nip05", nil, "NIP-05 identifier (repeatable)")
	contactAddCmd.Flags().StringSliceVar(&addNpub, "npub", nil, "nostr public key (repeatable)")
	contactAddCmd.MarkFlagsMutuallyExclusive("file", "name")
}

// readRecord decodes one contact record from path, or from in for "-".
func readRecord(in io.Reader, path string) (contact.Record, error) {
	var r io.Reader = in
	if path != "-" {
		f, err := os.Open(path) // #nosec G304 -- path is supplied by the user on the command line
		if err != nil {
			return contact.Record{}, rdxerr.WithCause(rdxerr.ErrInvalidInput, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var rec contact.Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return contact.Record{}, rdxerr.WithSuggestion(
			rdxerr.WithCause(rdxerr.ErrInvalidInput, err),
			"the record must be a single JSON contact object",
		)
	}
	return rec, nil
}

func runContactUpdate(cmd *cobra.Command, _ []string) error {
	rec, err := readRecord(cmd.InOrStdin(), recordFile)
	if err != nil {
		return err
	}
	if err := rec.ValidateInput(); err != nil {
		return rdxerr.WithCause(rdxerr.ErrInvalidInput, err)
	}

	cc, err := contactsContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	updated, err := cc.Contacts.UpdateContact(cmd.Context(), rec)
	if err != nil {
		return err
	}
	if !updated {
		return rdxerr.WithSuggestion(
			rdxerr.WithDetails(rdxerr.ErrContactNotFound, map[string]string{"id": rec.ID}),
			"nothing was written; use 'rolodex contact add' for new contacts",
		)
	}
	return output.FormatSuccess(cmd.OutOrStdout(), fmt.Sprintf("Updated contact %s (%s)", rec.Name, rec.ID), cc.Formatter.Format())
}

func recordFromFlags() contact.Record {
	rec := contact.Record{
		Name:           strings.TrimSpace(addName),
		Description:    addDescription,
		IsFavourite:    addFavourite,
		LNAddress:      addLN,
		OnchainAddress: addOnchain,
		NIP05:          addNIP05,
		NostrNpub:      addNpub,
	}
	if addPhoto != "" {
		photo := addPhoto
		rec.Photo = &photo
	}
	return rec
}

func runContactAdd(cmd *cobra.Command, _ []string) error {
	var rec contact.Record
	if recordFile != "" {
		var err error
		if rec, err = readRecord(cmd.InOrStdin(), recordFile); err != nil {
			return err
		}
	} else {
		rec = recordFromFlags()
	}

	cc, err := contactsContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	added, err := cc.Contacts.AddContact(cmd.Context(), rec)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if cc.Formatter.IsJSON() {
		return output.WriteJSON(w, added)
	}
	out(w, "Added contact %s (%s)\n", added.Name, added.ID)
	return nil
}
