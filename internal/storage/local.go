package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LocalStore keeps audio in a directory served under URLPrefix.
type LocalStore struct {
	dir       string
	urlPrefix string
	prefix    string
}

// NewLocalStore creates dir if needed. Cleanup only touches files whose names
// were generated with namePrefix.
func NewLocalStore(dir, namePrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, urlPrefix: "/static/", prefix: namePrefix}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

// Save writes data next to its final name and renames it into place, so a
// concurrent reader never sees a partial file.
func (s *LocalStore) Save(_ context.Context, name string, data []byte, _ string) (string, error) {
	if !validName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("storage: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("storage: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("storage: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("storage: save %s: %w", name, err)
	}

	return s.urlPrefix + name, nil
}

func (s *LocalStore) Cleanup(ctx context.Context, olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("storage: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if !e.Type().IsRegular() || !generated(e.Name(), s.prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("storage: remove %s: %w", e.Name(), err)
		}
		removed++
	}
	return removed, nil
}
