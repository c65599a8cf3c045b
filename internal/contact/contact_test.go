package contact

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleRecord() Record {
	return Record{
		ID:             "a",
		Name:           "Alice",
		Description:    "coffee money",
		Photo:          strPtr("file:///photos/alice.png"),
		LNAddress:      []string{"alice@getalby.com", "alice@stacker.news"},
		OnchainAddress: []string{"bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"},
		NIP05:          []string{"alice@nostr.example"},
		NostrNpub:      []string{},
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"lightning", KindLightning, true},
		{"lnAddress", KindLightning, true},
		{" ONCHAIN ", KindOnchain, true},
		{"onchainAddress", KindOnchain, true},
		{"nip05", KindNIP05, true},
		{"nostrNpub", KindNostrPubkey, true},
		{"npub", KindNostrPubkey, true},
		{"email", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseKind(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordValidate(t *testing.T) {
	t.Parallel()

	rec := sampleRecord()
	require.NoError(t, rec.Validate())

	noID := sampleRecord()
	noID.ID = " "
	require.ErrorIs(t, noID.Validate(), ErrMissingID)

	noName := sampleRecord()
	noName.Name = ""
	require.ErrorIs(t, noName.Validate(), ErrMissingName)

	// Stored records written elsewhere may carry a bare path as photo.
	pathPhoto := sampleRecord()
	pathPhoto.Photo = strPtr("photos/alice.png")
	require.NoError(t, pathPhoto.Validate())

	noPhoto := sampleRecord()
	noPhoto.Photo = nil
	require.NoError(t, noPhoto.Validate())
	assert.False(t, noPhoto.HasPhoto())
}

func TestRecordValidateInput(t *testing.T) {
	t.Parallel()

	require.NoError(t, sampleRecord().ValidateInput())

	noName := sampleRecord()
	noName.Name = ""
	require.ErrorIs(t, noName.ValidateInput(), ErrMissingName)

	badPhoto := sampleRecord()
	badPhoto.Photo = strPtr("not a uri")
	require.ErrorIs(t, badPhoto.ValidateInput(), ErrInvalidPhoto)

	emptyPhoto := sampleRecord()
	emptyPhoto.Photo = strPtr("")
	require.NoError(t, emptyPhoto.ValidateInput())
}

func TestWithFavouriteToggled(t *testing.T) {
	t.Parallel()

	rec := sampleRecord()
	once := rec.WithFavouriteToggled()
	twice := once.WithFavouriteToggled()

	assert.True(t, once.IsFavourite)
	assert.Equal(t, rec, twice, "toggling twice restores the record")

	// The toggled copy does not share backing arrays with the original.
	once.LNAddress[0] = "mallory@example.com"
	assert.Equal(t, "alice@getalby.com", rec.LNAddress[0])
}

func TestClone(t *testing.T) {
	t.Parallel()

	rec := sampleRecord()
	c := rec.Clone()
	require.Equal(t, rec, c)

	*c.Photo = "file:///other.png"
	c.NIP05[0] = "bob@nostr.example"
	assert.Equal(t, "file:///photos/alice.png", *rec.Photo)
	assert.Equal(t, "alice@nostr.example", rec.NIP05[0])
}

func TestAddresses(t *testing.T) {
	t.Parallel()

	rec := sampleRecord()
	got := rec.Addresses()

	assert.Equal(t, []Address{
		{Kind: KindLightning, Value: "alice@getalby.com"},
		{Kind: KindLightning, Value: "alice@stacker.news"},
		{Kind: KindOnchain, Value: "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"},
		{Kind: KindNIP05, Value: "alice@nostr.example"},
	}, got)

	assert.Empty(t, rec.AddressesOf(KindNostrPubkey))
	assert.Nil(t, rec.AddressesOf(Kind("email")))
}

func TestRecordJSONLayout(t *testing.T) {
	t.Parallel()

	rec := Record{ID: "b", Name: "Bob"}.Normalized()
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "b",
		"name": "Bob",
		"description": "",
		"photo": null,
		"isFavourite": false,
		"lnAddress": [],
		"onchainAddress": [],
		"nip05": [],
		"nostrNpub": []
	}`, string(data))
}

func TestCollection(t *testing.T) {
	t.Parallel()

	a := sampleRecord()
	b := Record{ID: "b", Name: "Bob", IsFavourite: true}
	c := Collection{a, b}

	assert.Equal(t, 1, c.IndexOf("b"))
	assert.Equal(t, -1, c.IndexOf("z"))
	assert.Equal(t, []string{"a", "b"}, c.IDs())

	found, ok := c.Find("a")
	require.True(t, ok)
	assert.Equal(t, "Alice", found.Name)

	_, ok = c.Find("z")
	assert.False(t, ok)

	assert.Equal(t, Collection{b}, c.Favourites())
	require.NoError(t, c.Validate())

	dup := Collection{a, b, a}
	require.ErrorIs(t, dup.Validate(), ErrDuplicateID)

	clone := c.Clone()
	clone[0].LNAddress[0] = "changed"
	assert.Equal(t, "alice@getalby.com", c[0].LNAddress[0])
	assert.Nil(t, Collection(nil).Clone())
}

func TestNewID(t *testing.T) {
	t.Parallel()

	id := NewID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, NewID())
}
