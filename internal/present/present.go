package present

import (
	"errors"

	"github.com/mrz1836/rolodex/internal/contact"
	"github.com/mrz1836/rolodex/internal/handoff"
)

// Presentation describes how one address kind is shown.
type Presentation struct {
	Kind     contact.Kind `json:"kind"`
	Icon     string       `json:"icon"`
	Label    string       `json:"label"`
	Sendable bool         `json:"sendable"`
}

var presentations = map[contact.Kind]Presentation{
	contact.KindLightning:   {Kind: contact.KindLightning, Icon: "⚡", Label: "Lightning", Sendable: true},
	contact.KindOnchain:     {Kind: contact.KindOnchain, Icon: "₿", Label: "On-chain", Sendable: true},
	contact.KindNIP05:       {Kind: contact.KindNIP05, Icon: "✔", Label: "NIP-05"},
	contact.KindNostrPubkey: {Kind: contact.KindNostrPubkey, Icon: "🔑", Label: "Nostr"},
}

// Classify returns the presentation of kind. Only lightning and on-chain
// addresses can be sent to; NIP-05 identifiers and nostr keys are
// display-only.
func Classify(kind contact.Kind) Presentation {
	if p, ok := presentations[kind]; ok {
		return p
	}
	return Presentation{Kind: kind, Icon: "•", Label: string(kind)}
}

// SendAction builds the send hand-off for a tapped address. The destination
// is the full, untruncated value.
func SendAction(destination, contactName string) handoff.SendRequest {
	return handoff.SendRequest{Destination: destination, ContactName: contactName}
}

// ErrNoSuchEntry indicates an entry index outside a kind's values.
var ErrNoSuchEntry = errors.New("no such address entry")
