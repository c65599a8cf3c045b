package present

import (
	"fmt"

	"github.com/mrz1836/rolodex/internal/contact"
	"github.com/mrz1836/rolodex/internal/handoff"
)

// Entry is one displayed address.
type Entry struct {
	Kind    contact.Kind         `json:"kind"`
	Index   int                  `json:"index"`
	Raw     string               `json:"value"`
	Display string               `json:"display"`
	Icon    string               `json:"icon"`
	Action  *handoff.SendRequest `json:"action,omitempty"`
}

// Section groups the entries of one kind.
type Section struct {
	Presentation
	Entries []Entry `json:"entries"`
}

// Formatter lays out a record's addresses.
type Formatter struct {
	Truncator Truncator
}

// NewFormatter returns a Formatter using t.
func NewFormatter(t Truncator) *Formatter {
	return &Formatter{Truncator: t}
}

// Format returns one section per kind that has at least one value, in
// lightning, on-chain, NIP-05, nostr order. Kinds without values produce
// nothing.
func (f *Formatter) Format(rec contact.Record) []Section {
	var sections []Section
	for _, addr := range rec.Addresses() {
		if n := len(sections); n == 0 || sections[n-1].Kind != addr.Kind {
			sections = append(sections, Section{Presentation: Classify(addr.Kind)})
		}
		s := &sections[len(sections)-1]
		s.Entries = append(s.Entries, f.entry(rec, s.Presentation, len(s.Entries), addr.Value))
	}
	return sections
}

// Entry resolves the index-th value of kind, as tapped on the screen.
func (f *Formatter) Entry(rec contact.Record, kind contact.Kind, index int) (Entry, error) {
	if !kind.Valid() {
		return Entry{}, fmt.Errorf("%w: %q", contact.ErrUnknownKind, kind)
	}
	for _, s := range f.Format(rec) {
		if s.Kind == kind && index >= 0 && index < len(s.Entries) {
			return s.Entries[index], nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s has %d %s entries, index %d",
		ErrNoSuchEntry, rec.ID, len(rec.AddressesOf(kind)), kind, index)
}

func (f *Formatter) entry(rec contact.Record, p Presentation, index int, value string) Entry {
	e := Entry{
		Kind:    p.Kind,
		Index:   index,
		Raw:     value,
		Display: f.Truncator.Truncate(value),
		Icon:    p.Icon,
	}
	if p.Sendable {
		action := SendAction(value, rec.Name)
		e.Action = &action
	}
	return e
}
