package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore implements usecase.FileStore on a local directory. Files are
// sharded into one subdirectory per year, taken from the date prefix of the
// stored name.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{root: dir}
}

// Save writes the file under its stored name, creating the shard directory
// on demand.
func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create voucher directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create voucher file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)

		return fmt.Errorf("write voucher file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)

		return fmt.Errorf("close voucher file: %w", err)
	}

	return nil
}

// Open returns a reader over a stored file. The caller closes it.
func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	return os.Open(path)
}

// Remove deletes a stored file. A missing file counts as already removed.
func (s *LocalStore) Remove(ctx context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

func (s *LocalStore) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid voucher file name %q", name)
	}

	shard := "misc"
	if idx := strings.Index(name, "-"); idx > 0 {
		shard = name[:idx]
	}

	return filepath.Join(s.root, shard, name), nil
}
