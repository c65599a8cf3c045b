// Package contact defines the contact record persisted in the wallet's
// encrypted contact slot, and the tagged address entries derived from it.
package contact

import (
	"errors"
	"net/url"
	"slices"
	"strings"
)

var (
	// ErrMissingID indicates a record without an identifier.
	ErrMissingID = errors.New("contact id is required")

	// ErrMissingName indicates a record without a display name.
	ErrMissingName = errors.New("contact name is required")

	// ErrInvalidPhoto indicates the photo is not a usable URI.
	ErrInvalidPhoto = errors.New("contact photo must be a URI")

	// ErrUnknownKind indicates an address kind outside the four known kinds.
	ErrUnknownKind = errors.New("unknown address kind")
)

// Kind identifies one of the four address-like fields of a contact.
type Kind string

// Address kinds, in display order.
const (
	KindLightning   Kind = "lightning"
	KindOnchain     Kind = "onchain"
	KindNIP05       Kind = "nip05"
	KindNostrPubkey Kind = "nostrPubkey"
)

// Kinds returns every address kind in display order.
func Kinds() []Kind {
	return []Kind{KindLightning, KindOnchain, KindNIP05, KindNostrPubkey}
}

// ParseKind parses a kind name. It accepts the canonical names plus the
// JSON field names used by the stored record ("lnAddress", "nostrNpub", ...).
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lightning", "ln", "lnaddress":
		return KindLightning, true
	case "onchain", "btc", "onchainaddress":
		return KindOnchain, true
	case "nip05":
		return KindNIP05, true
	case "nostrpubkey", "npub", "nostrnpub", "nostr":
		return KindNostrPubkey, true
	default:
		return "", false
	}
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is one of the four known kinds.
func (k Kind) Valid() bool {
	return slices.Contains(Kinds(), k)
}

// Address is a single tagged address entry.
type Address struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
}

// Record is a single contact. The JSON layout matches the mobile wallet's
// stored contacts so both can share one slot.
type Record struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Photo          *string  `json:"photo"`
	IsFavourite    bool     `json:"isFavourite"`
	LNAddress      []string `json:"lnAddress"`
	OnchainAddress []string `json:"onchainAddress"`
	NIP05          []string `json:"nip05"`
	NostrNpub      []string `json:"nostrNpub"`
}

// Validate checks the fields every stored record must carry. Records
// written by other clients may hold any photo value, so the photo is not
// checked here.
func (r Record) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	return nil
}

// ValidateInput checks a record about to be written by rolodex: Validate,
// plus a photo that parses as an absolute URI.
func (r Record) ValidateInput() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.HasPhoto() {
		if u, err := url.Parse(*r.Photo); err != nil || u.Scheme == "" {
			return ErrInvalidPhoto
		}
	}
	return nil
}

// HasPhoto reports whether the record carries a non-empty photo URI.
func (r Record) HasPhoto() bool {
	return r.Photo != nil && *r.Photo != ""
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	c := r
	if r.Photo != nil {
		photo := *r.Photo
		c.Photo = &photo
	}
	c.LNAddress = slices.Clone(r.LNAddress)
	c.OnchainAddress = slices.Clone(r.OnchainAddress)
	c.NIP05 = slices.Clone(r.NIP05)
	c.NostrNpub = slices.Clone(r.NostrNpub)
	return c
}

// WithFavouriteToggled returns a copy of the record with IsFavourite negated.
func (r Record) WithFavouriteToggled() Record {
	c := r.Clone()
	c.IsFavourite = !r.IsFavourite
	return c
}

// Normalized returns a copy whose address sequences are never nil, so the
// encoded record always carries arrays rather than null.
func (r Record) Normalized() Record {
	c := r.Clone()
	for _, kind := range Kinds() {
		if p := c.field(kind); *p == nil {
			*p = []string{}
		}
	}
	return c
}

// AddressesOf returns the values of one kind in insertion order.
func (r Record) AddressesOf(kind Kind) []string {
	p := r.field(kind)
	if p == nil {
		return nil
	}
	return *p
}

// Addresses flattens the four address sequences into tagged entries,
// ordered by kind and then by insertion order within each kind.
func (r Record) Addresses() []Address {
	var out []Address
	for _, kind := range Kinds() {
		for _, v := range r.AddressesOf(kind) {
			out = append(out, Address{Kind: kind, Value: v})
		}
	}
	return out
}

// field returns a pointer to the slice backing kind, or nil for an unknown kind.
func (r *Record) field(kind Kind) *[]string {
	switch kind {
	case KindLightning:
		return &r.LNAddress
	case KindOnchain:
		return &r.OnchainAddress
	case KindNIP05:
		return &r.NIP05
	case KindNostrPubkey:
		return &r.NostrNpub
	default:
		return nil
	}
}
