// Package seal encrypts the contact store at rest with age passphrase
// recipients and keeps the passphrase in locked, zeroable memory.
package seal

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"filippo.io/age"
)

// DefaultWorkFactor is the scrypt log2(N) used for new ciphertexts.
const DefaultWorkFactor = 18

var (
	// ErrEmptyPassphrase indicates an empty passphrase was supplied.
	ErrEmptyPassphrase = errors.New("passphrase is empty")

	// ErrDecrypt indicates the ciphertext could not be opened with the
	// passphrase (wrong passphrase or corrupted data).
	ErrDecrypt = errors.New("decryption failed")
)

// Sealer encrypts and decrypts blobs with a single passphrase.
type Sealer struct {
	passphrase *SecureBytes
	workFactor int
}

// Option configures a Sealer.
type Option func(*Sealer)

// WithWorkFactor sets the scrypt work factor for encryption and the maximum
// accepted work factor for decryption.
func WithWorkFactor(logN int) Option {
	return func(s *Sealer) {
		if logN > 0 {
			s.workFactor = logN
		}
	}
}

// NewSealer copies passphrase into secure memory. The caller may zero its
// own copy once this returns.
func NewSealer(passphrase []byte, opts ...Option) (*Sealer, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}
	sb, err := SecureBytesFromSlice(passphrase)
	if err != nil {
		return nil, err
	}
	s := &Sealer{passphrase: sb, workFactor: DefaultWorkFactor}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Seal encrypts plaintext.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	return encrypt(plaintext, string(s.passphrase.Bytes()), s.workFactor)
}

// Open decrypts ciphertext produced by Seal.
func (s *Sealer) Open(ciphertext []byte) ([]byte, error) {
	return decrypt(ciphertext, string(s.passphrase.Bytes()), s.workFactor)
}

// Destroy zeroes the passphrase. The Sealer is unusable afterwards.
func (s *Sealer) Destroy() {
	s.passphrase.Destroy()
}

func encrypt(plaintext []byte, passphrase string, workFactor int) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating scrypt recipient: %w", err)
	}
	recipient.SetWorkFactor(workFactor)

	buf := &bytes.Buffer{}
	w, err := age.Encrypt(buf, recipient)
	if err != nil {
		return nil, fmt.Errorf("initializing encryption: %w", err)
	}

	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("writing encrypted data: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing encryption: %w", err)
	}

	return buf.Bytes(), nil
}

func decrypt(ciphertext []byte, passphrase string, maxWorkFactor int) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating scrypt identity: %w", err)
	}
	if maxWorkFactor < DefaultWorkFactor {
		maxWorkFactor = DefaultWorkFactor
	}
	identity.SetMaxWorkFactor(maxWorkFactor)

	r, err := age.Decrypt(bytes.NewReader(ciphertext), identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading payload: %w", ErrDecrypt, err)
	}

	return plaintext, nil
}
