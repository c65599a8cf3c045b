// Package kvstore abstracts the encrypted string key/value store that holds
// the contact collection. Backends: an age-encrypted file per key, the OS
// keychain, and an in-memory map for tests.
package kvstore

import (
	"context"
	"errors"
	"regexp"
)

var (
	// ErrInvalidKey indicates a key outside [a-zA-Z0-9._-]{1,64}.
	ErrInvalidKey = errors.New("invalid storage key")

	// ErrUnknownBackend indicates an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// keyPattern restricts keys so they are safe as file names.
var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,64}$`)

// Store is a string key/value store. An absent key is reported as
// found == false with a nil error; err is reserved for store faults.
type Store interface {
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
}

// ValidateKey checks that key is usable by every backend.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) || key == "." || key == ".." {
		return ErrInvalidKey
	}
	return nil
}
