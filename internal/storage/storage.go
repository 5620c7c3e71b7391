package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// KV is the durable key-value contract the timesheet store persists
// through. Values are opaque serialized blobs; Get reports whether the
// key exists.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// BaseDir returns the default data directory (~/.horas).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".horas"), nil
}

// FileKV stores each key as a JSON file inside a directory.
type FileKV struct {
	dir string
}

// NewFileKV returns a file-backed store rooted at dir. The directory is
// created on the first write.
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get reads the value for key. A missing file is not an error.
func (f *FileKV) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage error reading %s: %w", f.path(key), err)
	}
	return string(data), true, nil
}

// Set atomically writes the value for key: write to a temp file, then rename.
func (f *FileKV) Set(key, value string) error {
	path := f.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(value), 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// Remove deletes the value for key. Removing a missing key is a no-op.
func (f *FileKV) Remove(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage error removing %s: %w", f.path(key), err)
	}
	return nil
}
