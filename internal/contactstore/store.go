// Package contactstore persists the contact collection in a single slot of
// an encrypted key/value store. Every write replaces the whole collection.
//
// There is no locking across callers: two concurrent updates of different
// contacts race at collection granularity and the last writer wins.
package contactstore

import (
	"context"
	"strings"

	"github.com/mrz1836/rolodex/internal/config"
	"github.com/mrz1836/rolodex/internal/contact"
	"github.com/mrz1836/rolodex/internal/kvstore"
	rdxerr "github.com/mrz1836/rolodex/pkg/errors"
)

// Logger is the logging surface the adapter needs.
type Logger interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}

// Adapter loads, updates and rewrites the contact collection.
type Adapter struct {
	store kvstore.Store
	key   string
	log   Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithKey sets the slot holding the collection.
func WithKey(key string) Option {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l
		}
	}
}

// New creates an adapter over store.
func New(store kvstore.Store, opts ...Option) *Adapter {
	a := &Adapter{
		store: store,
		key:   config.DefaultCollectionKey,
		log:   config.NullLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the slot holding the collection.
func (a *Adapter) Key() string {
	return a.key
}

// LoadCollection returns the stored collection in stored order. A missing
// or empty slot yields an empty collection. Store faults and undecodable
// blobs return ErrStorageRead.
func (a *Adapter) LoadCollection(ctx context.Context) (contact.Collection, error) {
	doc, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.records, nil
}

func (a *Adapter) load(ctx context.Context) (*document, error) {
	blob, found, err := a.store.Get(ctx, a.key)
	if err != nil {
		a.log.Error("reading contacts from %s: %v", a.key, err)
		return nil, a.readError(err)
	}
	if !found {
		a.log.Debug("contact slot %s is empty", a.key)
		return &document{records: contact.Collection{}}, nil
	}

	doc, err := decodeDocument(blob)
	if err != nil {
		a.log.Error("decoding contacts from %s: %v", a.key, err)
		return nil, a.readError(err)
	}

	if err := doc.records.Validate(); err != nil {
		// Keep serving the data; updates only ever touch the first match.
		a.log.Error("contact slot %s: %v", a.key, err)
	}

	a.log.Debug("loaded %d contacts from %s", len(doc.records), a.key)
	return doc, nil
}

// Find returns the contact with the given id.
func (a *Adapter) Find(ctx context.Context, id string) (contact.Record, error) {
	records, err := a.LoadCollection(ctx)
	if err != nil {
		return contact.Record{}, err
	}
	rec, ok := records.Find(id)
	if !ok {
		return contact.Record{}, rdxerr.WithDetails(rdxerr.ErrContactNotFound, map[string]string{"id": id})
	}
	return rec, nil
}

// UpdateContact replaces the stored record sharing updated's id, keeping its
// position, and rewrites the collection. Other records are written back
// byte for byte, and stored fields rolodex does not know are kept on the
// replaced one. When no record has that id the collection is left
// untouched and not rewritten; updated reports whether a write happened.
// Repeating the same update yields the same stored state.
func (a *Adapter) UpdateContact(ctx context.Context, rec contact.Record) (updated bool, err error) {
	if strings.TrimSpace(rec.ID) == "" {
		return false, rdxerr.WithSuggestion(rdxerr.ErrInvalidInput, "contact id is required for an update")
	}

	doc, err := a.load(ctx)
	if err != nil {
		return false, err
	}

	idx := doc.records.IndexOf(rec.ID)
	if idx < 0 {
		a.log.Debug("update skipped: no contact with id %s", rec.ID)
		return false, nil
	}

	if err := doc.replace(idx, rec.Normalized()); err != nil {
		return false, a.encodeError(rec.ID, err)
	}
	if err := a.write(ctx, doc); err != nil {
		return false, err
	}

	a.log.Debug("updated contact %s at position %d", rec.ID, idx)
	return true, nil
}

// ToggleFavorite flips IsFavourite on the caller's current record and
// persists it. The toggle is derived from current, not from a fresh read.
// On success the toggled record is returned; on failure, current is
// returned unchanged together with the error. A record that is not stored
// is not written and reports ErrContactNotFound, so callers never show a
// toggle that was not saved.
func (a *Adapter) ToggleFavorite(ctx context.Context, current contact.Record) (contact.Record, error) {
	toggled := current.WithFavouriteToggled()

	updated, err := a.UpdateContact(ctx, toggled)
	if err != nil {
		return current, err
	}
	if !updated {
		a.log.Debug("favourite toggle of %s not persisted: contact is not stored", current.ID)
		return current, rdxerr.WithDetails(rdxerr.ErrContactNotFound, map[string]string{"id": current.ID})
	}
	return toggled, nil
}

// AddContact appends rec to the collection. An empty id is assigned a new
// one; an id already present is rejected so ids stay unique.
func (a *Adapter) AddContact(ctx context.Context, rec contact.Record) (contact.Record, error) {
	if rec.ID == "" {
		rec.ID = contact.NewID()
	}
	if err := rec.ValidateInput(); err != nil {
		return contact.Record{}, rdxerr.WithCause(rdxerr.ErrInvalidInput, err)
	}

	doc, err := a.load(ctx)
	if err != nil {
		return contact.Record{}, err
	}
	if doc.records.IndexOf(rec.ID) >= 0 {
		return contact.Record{}, rdxerr.WithDetails(rdxerr.ErrDuplicateContact, map[string]string{"id": rec.ID})
	}

	rec = rec.Normalized()
	if err := doc.add(rec); err != nil {
		return contact.Record{}, a.encodeError(rec.ID, err)
	}
	if err := a.write(ctx, doc); err != nil {
		return contact.Record{}, err
	}

	a.log.Debug("added contact %s", rec.ID)
	return rec, nil
}

func (a *Adapter) write(ctx context.Context, doc *document) error {
	if err := a.store.Set(ctx, a.key, doc.encode()); err != nil {
		a.log.Error("writing contacts to %s: %v", a.key, err)
		return rdxerr.WithDetails(rdxerr.WithCause(rdxerr.ErrStorageWrite, err), map[string]string{"key": a.key})
	}
	return nil
}

func (a *Adapter) encodeError(id string, cause error) error {
	a.log.Error("encoding contact %s for %s: %v", id, a.key, cause)
	return rdxerr.WithCause(rdxerr.ErrStorageWrite, cause)
}

func (a *Adapter) readError(cause error) error {
	err := rdxerr.WithDetails(rdxerr.WithCause(rdxerr.ErrStorageRead, cause), map[string]string{"key": a.key})
	if rdxerr.Is(cause, kvstore.ErrDecryptionFailed) {
		err = rdxerr.WithSuggestion(err, "check the passphrase (ROLODEX_PASSPHRASE)")
	}
	return err
}
