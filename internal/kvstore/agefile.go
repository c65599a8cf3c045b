package kvstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mrz1836/rolodex/internal/fileutil"
	"github.com/mrz1836/rolodex/internal/seal"
)

const (
	// ageFileExtension is appended to the key to name its file.
	ageFileExtension = ".age"

	// ageFilePermissions is the permission mode for value files.
	ageFilePermissions = 0o600

	// ageDirPermissions is the permission mode for the store directory.
	ageDirPermissions = 0o700
)

// ErrDecryptionFailed indicates a value file could not be decrypted.
var ErrDecryptionFailed = errors.New("decryption failed - wrong passphrase or corrupted file")

// AgeFile stores each key as one age-encrypted file under a directory.
type AgeFile struct {
	dir    string
	sealer *seal.Sealer
}

// NewAgeFile creates a file-backed store rooted at dir.
func NewAgeFile(dir string, sealer *seal.Sealer) *AgeFile {
	return &AgeFile{dir: dir, sealer: sealer}
}

// Dir returns the store directory.
func (s *AgeFile) Dir() string {
	return s.dir
}

// Get decrypts and returns the value stored under key.
func (s *AgeFile) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	path, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	ciphertext, found, err := fileutil.ReadIfExists(path)
	if err != nil || !found {
		return "", false, err
	}
	if len(ciphertext) == 0 {
		return "", true, nil
	}

	plaintext, err := s.sealer.Open(ciphertext)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	defer seal.Zero(plaintext)

	return string(plaintext), true, nil
}

// Set encrypts value and atomically replaces the file for key.
func (s *AgeFile) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}

	ciphertext, err := s.sealer.Seal([]byte(value))
	if err != nil {
		return fmt.Errorf("encrypting value: %w", err)
	}

	return fileutil.WriteAtomic(path, ciphertext, ageFilePermissions, ageDirPermissions)
}

func (s *AgeFile) path(key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, key+ageFileExtension), nil
}
