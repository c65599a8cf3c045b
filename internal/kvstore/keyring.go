package kvstore

import (
	"context"
	"errors"

	"github.com/zalando/go-keyring"
)

// DefaultKeyringService is the keychain service name entries are filed under.
const DefaultKeyringService = "rolodex"

// Keyring stores values in the OS keychain (macOS Keychain, Secret Service,
// Windows Credential Manager). Large collections may exceed per-item limits
// of some platforms; those failures surface from Set.
type Keyring struct {
	service string
}

// NewKeyring creates a keychain-backed store under the given service name.
func NewKeyring(service string) *Keyring {
	if service == "" {
		service = DefaultKeyringService
	}
	return &Keyring{service: service}
}

// Get returns the value stored under key.
func (k *Keyring) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if err := ValidateKey(key); err != nil {
		return "", false, err
	}

	v, err := keyring.Get(k.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set replaces the value stored under key.
func (k *Keyring) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateKey(key); err != nil {
		return err
	}
	return keyring.Set(k.service, key, value)
}

// ProbeKeyring reports whether the OS keychain is usable by writing,
// reading back and deleting a throwaway entry.
func ProbeKeyring(service string) bool {
	const (
		probeUser  = "probe"
		probeValue = "ok"
	)
	if service == "" {
		service = DefaultKeyringService
	}
	service += "-probe"

	if err := keyring.Set(service, probeUser, probeValue); err != nil {
		return false
	}
	v, err := keyring.Get(service, probeUser)
	_ = keyring.Delete(service, probeUser)
	return err == nil && v == probeValue
}
