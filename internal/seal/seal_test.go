package seal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testWorkFactor keeps scrypt cheap in tests.
const testWorkFactor = 10

func TestSealer_RoundTrip(t *testing.T) {
	t.Parallel()

	s, err := NewSealer([]byte("correct horse battery staple"), WithWorkFactor(testWorkFactor))
	require.NoError(t, err)
	defer s.Destroy()

	plaintext := []byte(`[{"id":"a","name":"Alice"}]`)
	ciphertext, err := s.Seal(plaintext)
	require.NoError(t, err)
	assert.NotContains(t, string(ciphertext), "Alice")

	opened, err := s.Open(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestSealer_WrongPassphrase(t *testing.T) {
	t.Parallel()

	good, err := NewSealer([]byte("right"), WithWorkFactor(testWorkFactor))
	require.NoError(t, err)
	bad, err := NewSealer([]byte("wrong"), WithWorkFactor(testWorkFactor))
	require.NoError(t, err)

	ciphertext, err := good.Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = bad.Open(ciphertext)
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestSealer_CorruptCiphertext(t *testing.T) {
	t.Parallel()

	s, err := NewSealer([]byte("pass"), WithWorkFactor(testWorkFactor))
	require.NoError(t, err)

	_, err = s.Open([]byte("not an age file"))
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestSealer_EmptyPassphrase(t *testing.T) {
	t.Parallel()

	_, err := NewSealer(nil)
	require.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestSealer_DestroyedPassphrase(t *testing.T) {
	t.Parallel()

	s, err := NewSealer([]byte("pass"), WithWorkFactor(testWorkFactor))
	require.NoError(t, err)
	s.Destroy()

	_, err = s.Seal([]byte("data"))
	require.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestSecureBytes(t *testing.T) {
	t.Parallel()

	src := []byte("hunter2")
	sb, err := SecureBytesFromSlice(src)
	require.NoError(t, err)

	Zero(src)
	assert.Equal(t, []byte("hunter2"), sb.Bytes(), "secure copy is independent of the source")
	assert.Equal(t, 7, sb.Len())

	backing := sb.Bytes()
	sb.Destroy()
	assert.Nil(t, sb.Bytes())
	assert.Equal(t, 0, sb.Len())
	assert.False(t, sb.IsLocked())
	assert.Equal(t, make([]byte, 7), backing, "destroy zeroes the buffer")

	sb.Destroy()
}
