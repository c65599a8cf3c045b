package contact

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrDuplicateID indicates two records in one collection share an id.
var ErrDuplicateID = errors.New("duplicate contact id")

// Collection is the ordered set of contacts stored as one blob.
type Collection []Record

// IndexOf returns the position of the first record with the given id, or -1.
func (c Collection) IndexOf(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the first record with the given id.
func (c Collection) Find(id string) (Record, bool) {
	if i := c.IndexOf(id); i >= 0 {
		return c[i], true
	}
	return Record{}, false
}

// IDs returns the record ids in collection order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ids
}

// Favourites returns the favourite records in collection order.
func (c Collection) Favourites() Collection {
	var out Collection
	for _, r := range c {
		if r.IsFavourite {
			out = append(out, r)
		}
	}
	return out
}

// Validate checks that no two records share an id.
func (c Collection) Validate() error {
	seen := make(map[string]int, len(c))
	for i, r := range c {
		if j, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateID, r.ID, j, i)
		}
		seen[r.ID] = i
	}
	return nil
}

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for i := range c {
		out[i] = c[i].Clone()
	}
	return out
}

// NewID returns a fresh random contact identifier.
func NewID() string {
	return uuid.NewString()
}
