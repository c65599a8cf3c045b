// Package screen implements the contact detail screen and the QR screen.
//
// A screen holds the only mutable state in the application: the record it
// displays. Persistence goes through the contact store, navigation through a
// handoff.Navigator.
package screen

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mrz1836/rolodex/internal/config"
	"github.com/mrz1836/rolodex/internal/contact"
	"github.com/mrz1836/rolodex/internal/handoff"
	"github.com/mrz1836/rolodex/internal/output"
	"github.com/mrz1836/rolodex/internal/present"
	rdxerr "github.com/mrz1836/rolodex/pkg/errors"
)

// FavoriteToggler persists a favourite toggle.
type FavoriteToggler interface {
	ToggleFavorite(ctx context.Context, current contact.Record) (contact.Record, error)
}

// Logger is the logging surface the screens need.
type Logger interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}

// Deps are the collaborators of a ContactDetails screen.
type Deps struct {
	Store     FavoriteToggler
	Navigator handoff.Navigator
	Formatter *present.Formatter
	Log       Logger
}

// ContactDetails is the detail screen of one contact.
type ContactDetails struct {
	mu      sync.Mutex
	current contact.Record

	store     FavoriteToggler
	navigator handoff.Navigator
	formatter *present.Formatter
	log       Logger
}

// NewContactDetails opens the screen on rec. A nil or invalid record is
// ErrMissingContact: the screen never renders a half-empty contact.
func NewContactDetails(rec *contact.Record, deps Deps) (*ContactDetails, error) {
	if rec == nil {
		return nil, rdxerr.WithSuggestion(rdxerr.ErrMissingContact, "pick a contact with 'rolodex contact list'")
	}
	if err := rec.Validate(); err != nil {
		return nil, rdxerr.WithCause(rdxerr.ErrMissingContact, err)
	}

	s := &ContactDetails{
		current:   rec.Clone(),
		store:     deps.Store,
		navigator: deps.Navigator,
		formatter: deps.Formatter,
		log:       deps.Log,
	}
	if s.formatter == nil {
		s.formatter = present.NewFormatter(present.DefaultTruncator)
	}
	if s.log == nil {
		s.log = config.NullLogger()
	}
	return s, nil
}

// Contact returns a copy of the displayed record.
func (s *ContactDetails) Contact() contact.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// ToggleFavorite flips the star. The displayed record changes only once the
// store has accepted the write; on failure it keeps its previous state and
// the error is returned for the caller to show.
func (s *ContactDetails) ToggleFavorite(ctx context.Context) error {
	current := s.Contact()
	if s.store == nil {
		return rdxerr.WithSuggestion(rdxerr.ErrStorageWrite, "no contact store configured")
	}

	toggled, err := s.store.ToggleFavorite(ctx, current)
	if err != nil {
		s.log.Error("toggle favourite of %s: %v", current.ID, err)
		return err
	}

	s.mu.Lock()
	s.current = toggled
	s.mu.Unlock()
	s.log.Debug("contact %s favourite=%t", toggled.ID, toggled.IsFavourite)
	return nil
}

// Send hands the index-th address of kind to the send flow. Display-only
// kinds return ErrNotSendable and navigate nowhere.
func (s *ContactDetails) Send(ctx context.Context, kind contact.Kind, index int) error {
	rec := s.Contact()
	entry, err := s.formatter.Entry(rec, kind, index)
	if err != nil {
		return rdxerr.WithCause(rdxerr.ErrInvalidInput, err)
	}
	if entry.Action == nil {
		return rdxerr.WithDetails(rdxerr.ErrNotSendable, map[string]string{"kind": string(kind)})
	}
	return s.navigate(ctx, *entry.Action)
}

// ShowQR opens the QR screen for the index-th value of kind. Any kind can
// be shown, including display-only ones.
func (s *ContactDetails) ShowQR(ctx context.Context, kind contact.Kind, index int) error {
	entry, err := s.formatter.Entry(s.Contact(), kind, index)
	if err != nil {
		return rdxerr.WithCause(rdxerr.ErrInvalidInput, err)
	}
	return s.navigate(ctx, handoff.QRRequest{Value: entry.Raw})
}

// Edit hands the displayed record to the edit flow.
func (s *ContactDetails) Edit(ctx context.Context) error {
	return s.navigate(ctx, handoff.EditRequest{Prefill: s.Contact(), IsEdit: true})
}

func (s *ContactDetails) navigate(ctx context.Context, r handoff.Route) error {
	if s.navigator == nil {
		return nil
	}
	if err := s.navigator.Navigate(ctx, r); err != nil {
		s.log.Error("navigate to %s: %v", r.Route(), err)
		return err
	}
	return nil
}

// View is the rendered state of the screen.
type View struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Photo       *string           `json:"photo"`
	IsFavourite bool              `json:"isFavourite"`
	Sections    []present.Section `json:"sections"`
}

// View returns what the screen currently shows.
func (s *ContactDetails) View() View {
	return s.viewOf(s.Contact())
}

func (s *ContactDetails) viewOf(rec contact.Record) View {
	sections := s.formatter.Format(rec)
	if sections == nil {
		sections = []present.Section{}
	}
	return View{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Photo:       rec.Photo,
		IsFavourite: rec.IsFavourite,
		Sections:    sections,
	}
}

// Render writes the screen to w.
func (s *ContactDetails) Render(w io.Writer, format output.Format) error {
	rec := s.Contact()
	v := s.viewOf(rec)
	if format == output.FormatJSON {
		return output.WriteJSON(w, v)
	}

	var sb strings.Builder
	star := "☆"
	if v.IsFavourite {
		star = "★"
	}
	fmt.Fprintf(&sb, "%s %s\n", star, v.Name)
	if v.Description != "" {
		fmt.Fprintf(&sb, "  %s\n", v.Description)
	}
	if rec.HasPhoto() {
		fmt.Fprintf(&sb, "  photo: %s\n", *rec.Photo)
	}
	for _, sec := range v.Sections {
		fmt.Fprintf(&sb, "\n%s\n", sec.Label)
		for _, e := range sec.Entries {
			fmt.Fprintf(&sb, "  %s %s\n", e.Icon, e.Display)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
