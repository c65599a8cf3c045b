// Package fileutil provides the filesystem primitives behind the file-backed
// contact store: whole-file atomic replacement and absent-tolerant reads.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrEmptyPath indicates an empty file path was provided.
var ErrEmptyPath = errors.New("path is empty")

// WriteAtomic replaces path with data. Readers observe either the old
// content or the new content, never a partial write. Missing parent
// directories are created with dirPerm.
func WriteAtomic(path string, data []byte, perm, dirPerm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// The temp file is removed on every path; after a successful rename the
	// remove is a harmless no-op.
	defer func() { _ = os.Remove(tmpPath) }()

	if err := writeAndSync(tmp, data, perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil { //nolint:gosec // G703: path is validated by caller
		return fmt.Errorf("renaming temp file: %w", err)
	}

	if d, err := os.Open(dir); err == nil { //nolint:gosec // G304: dir is derived from validated path
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}

func writeAndSync(f *os.File, data []byte, perm os.FileMode) error {
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Chmod(perm); err != nil {
		return fmt.Errorf("setting temp file permissions: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	return nil
}

// ReadIfExists reads path. A missing file is reported as found == false
// with a nil error; any other failure is returned.
func ReadIfExists(path string) (data []byte, found bool, err error) {
	if path == "" {
		return nil, false, ErrEmptyPath
	}
	data, err = os.ReadFile(path) //nolint:gosec // G304: path is validated by caller
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return data, true, nil
}
