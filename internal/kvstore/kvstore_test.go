package kvstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/mrz1836/rolodex/internal/metrics"
	"github.com/mrz1836/rolodex/internal/seal"
)

var errFault = errors.New("store fault")

func newTestSealer(t *testing.T, pass string) *seal.Sealer {
	t.Helper()
	s, err := seal.NewSealer([]byte(pass), seal.WithWorkFactor(10))
	require.NoError(t, err)
	t.Cleanup(s.Destroy)
	return s
}

func TestValidateKey(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"zeus-contacts", "a", "contacts.v1", "A_b-9"} {
		require.NoError(t, ValidateKey(key), key)
	}
	for _, key := range []string{"", ".", "..", "../etc", "a/b", "with space"} {
		require.ErrorIs(t, ValidateKey(key), ErrInvalidKey, key)
	}
}

func TestMemory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("absent key is not an error", func(t *testing.T) {
		t.Parallel()
		m := NewMemory()
		v, found, err := m.Get(ctx, "zeus-contacts")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()
		m := NewMemory()
		require.NoError(t, m.Set(ctx, "k", "v"))
		v, found, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "v", v)
		assert.Equal(t, 1, m.Gets())
		assert.Equal(t, 1, m.Sets())
	})

	t.Run("faults", func(t *testing.T) {
		t.Parallel()
		m := NewMemory()
		m.Seed("k", "v")
		m.FailGet = errFault
		m.FailSet = errFault

		_, _, err := m.Get(ctx, "k")
		require.ErrorIs(t, err, errFault)
		require.ErrorIs(t, m.Set(ctx, "k", "other"), errFault)

		raw, ok := m.Raw("k")
		assert.True(t, ok)
		assert.Equal(t, "v", raw, "failed set leaves the value untouched")
	})

	t.Run("hooks", func(t *testing.T) {
		t.Parallel()
		m := NewMemory()
		var order []string
		m.OnGet = func(key string) { order = append(order, "get:"+key) }
		m.OnSet = func(key, value string) { order = append(order, "set:"+key+"="+value) }

		require.NoError(t, m.Set(ctx, "k", "1"))
		_, _, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []string{"set:k=1", "get:k"}, order)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		m := NewMemory()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, _, err := m.Get(cctx, "k")
		require.ErrorIs(t, err, context.Canceled)
		require.ErrorIs(t, m.Set(cctx, "k", "v"), context.Canceled)
	})
}

func TestAgeFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("round trip is encrypted at rest", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "store")
		s := NewAgeFile(dir, newTestSealer(t, "pass"))

		value := `[{"id":"a","name":"Alice"}]`
		require.NoError(t, s.Set(ctx, "zeus-contacts", value))

		raw, err := os.ReadFile(filepath.Join(dir, "zeus-contacts.age"))
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "Alice")

		got, found, err := s.Get(ctx, "zeus-contacts")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, value, got)

		info, err := os.Stat(filepath.Join(dir, "zeus-contacts.age"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("missing file is absent", func(t *testing.T) {
		t.Parallel()
		s := NewAgeFile(t.TempDir(), newTestSealer(t, "pass"))
		_, found, err := s.Get(ctx, "zeus-contacts")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("wrong passphrase", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, NewAgeFile(dir, newTestSealer(t, "right")).Set(ctx, "k", "v"))

		_, _, err := NewAgeFile(dir, newTestSealer(t, "wrong")).Get(ctx, "k")
		require.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("invalid key", func(t *testing.T) {
		t.Parallel()
		s := NewAgeFile(t.TempDir(), newTestSealer(t, "pass"))
		require.ErrorIs(t, s.Set(ctx, "../escape", "v"), ErrInvalidKey)
		_, _, err := s.Get(ctx, "../escape")
		require.ErrorIs(t, err, ErrInvalidKey)
	})
}

//nolint:paralleltest // keyring.MockInit swaps a package-level provider
func TestKeyring(t *testing.T) {
	keyring.MockInit()
	ctx := context.Background()

	k := NewKeyring("")
	_, found, err := k.Get(ctx, "zeus-contacts")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, k.Set(ctx, "zeus-contacts", "[]"))
	v, found, err := k.Get(ctx, "zeus-contacts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", v)

	require.ErrorIs(t, k.Set(ctx, "bad key", "x"), ErrInvalidKey)
	assert.True(t, ProbeKeyring("rolodex-test"))

	s, closeFn, err := Open(Options{Backend: "KEYRING", KeyringService: "svc"})
	require.NoError(t, err)
	assert.IsType(t, &Keyring{}, s)
	closeFn()

	keyring.MockInitWithError(errFault)
	_, _, err = k.Get(ctx, "zeus-contacts")
	require.ErrorIs(t, err, errFault)
	assert.False(t, ProbeKeyring("rolodex-test"))

	_, closeFn, err = Open(Options{Backend: BackendKeyring})
	require.ErrorIs(t, err, ErrKeyringUnavailable)
	assert.NotNil(t, closeFn)
	keyring.MockInit()
}

func TestOpen(t *testing.T) {
	t.Parallel()

	s, closeFn, err := Open(Options{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)
	closeFn()

	s, closeFn, err = Open(Options{Backend: "", Dir: t.TempDir(), Passphrase: []byte("p"), WorkFactor: 10})
	require.NoError(t, err)
	assert.IsType(t, &AgeFile{}, s)
	closeFn()

	_, closeFn, err = Open(Options{Backend: "file", Dir: t.TempDir()})
	require.ErrorIs(t, err, seal.ErrEmptyPassphrase)
	closeFn()

	_, _, err = Open(Options{Backend: "s3"})
	require.ErrorIs(t, err, ErrUnknownBackend)

	assert.True(t, NeedsPassphrase(""))
	assert.True(t, NeedsPassphrase("file"))
	assert.False(t, NeedsPassphrase("keyring"))
}

func TestInstrument(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mem := NewMemory()
	m := &metrics.Metrics{}
	s := Instrument(mem, m)

	_, found, err := s.Get(ctx, "zeus-contacts")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "zeus-contacts", "[]"))
	v, found, err := s.Get(ctx, "zeus-contacts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", v)

	mem.FailSet = errFault
	require.ErrorIs(t, s.Set(ctx, "zeus-contacts", "x"), errFault)

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Reads)
	assert.Equal(t, int64(1), snap.ReadMisses)
	assert.Equal(t, int64(2), snap.Writes)
	assert.Equal(t, int64(1), snap.WriteErrors)
}
