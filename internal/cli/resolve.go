package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/mrz1836/rolodex/internal/contact"
	rdxerr "github.com/mrz1836/rolodex/pkg/errors"
)

// maxSuggestDistance is the largest edit distance offered as "did you mean".
const maxSuggestDistance = 3

// resolveContact finds a contact by id, then by case-insensitive name.
func resolveContact(records contact.Collection, ref string) (contact.Record, error) {
	ref = strings.TrimSpace(ref)
	if rec, ok := records.Find(ref); ok {
		return rec, nil
	}

	var matches contact.Collection
	for _, rec := range records {
		if strings.EqualFold(rec.Name, ref) {
			matches = append(matches, rec)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
	default:
		return contact.Record{}, rdxerr.WithSuggestion(
			rdxerr.WithDetails(rdxerr.ErrInvalidInput, map[string]string{"name": ref}),
			fmt.Sprintf("%d contacts share this name, use an id: %s", len(matches), strings.Join(matches.IDs(), ", ")),
		)
	}

	err := rdxerr.WithDetails(rdxerr.ErrContactNotFound, map[string]string{"contact": ref})
	if s := suggestContact(records, ref); s != "" {
		return contact.Record{}, rdxerr.WithSuggestion(err, fmt.Sprintf("did you mean %q?", s))
	}
	return contact.Record{}, rdxerr.WithSuggestion(err, "run 'rolodex contact list' to see stored contacts")
}

// suggestContact returns the name or id closest to ref, or "" when nothing
// is within maxSuggestDistance edits.
func suggestContact(records contact.Collection, ref string) string {
	ref = strings.ToLower(ref)
	best, bestDist := "", math.MaxInt
	for _, rec := range records {
		for _, candidate := range []string{rec.Name, rec.ID} {
			dist := levenshtein.ComputeDistance(ref, strings.ToLower(candidate))
			if dist < bestDist {
				best, bestDist = candidate, dist
			}
		}
	}
	if bestDist <= maxSuggestDistance {
		return best
	}
	return ""
}
