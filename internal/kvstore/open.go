package kvstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mrz1836/rolodex/internal/seal"
)

// Backend names accepted by Open.
const (
	BackendFile    = "file"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

// ErrKeyringUnavailable indicates the OS keychain could not be used.
var ErrKeyringUnavailable = errors.New("OS keychain is not available")

// Options selects and configures a backend.
type Options struct {
	Backend        string
	Dir            string
	KeyringService string
	WorkFactor     int

	// Passphrase is required by the file backend. It is copied into
	// secure memory; the caller may zero its slice after Open returns.
	Passphrase []byte
}

// NeedsPassphrase reports whether backend encrypts with a passphrase.
func NeedsPassphrase(backend string) bool {
	return normalizeBackend(backend) == BackendFile
}

// Open builds the configured Store. The returned close function releases
// secrets held by the backend and is always non-nil.
func Open(opts Options) (Store, func(), error) {
	noop := func() {}

	switch normalizeBackend(opts.Backend) {
	case BackendFile:
		sealer, err := seal.NewSealer(opts.Passphrase, seal.WithWorkFactor(opts.WorkFactor))
		if err != nil {
			return nil, noop, fmt.Errorf("preparing encryption: %w", err)
		}
		return NewAgeFile(opts.Dir, sealer), sealer.Destroy, nil
	case BackendKeyring:
		if !ProbeKeyring(opts.KeyringService) {
			return nil, noop, fmt.Errorf("%w (service %q)", ErrKeyringUnavailable, opts.KeyringService)
		}
		return NewKeyring(opts.KeyringService), noop, nil
	case BackendMemory:
		return NewMemory(), noop, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q (use file, keyring or memory)", ErrUnknownBackend, opts.Backend)
	}
}

func normalizeBackend(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BackendFile
	}
	return s
}
