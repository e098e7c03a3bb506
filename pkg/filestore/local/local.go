// Package local stores files in a directory on the local file system.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"countervalidator/pkg/filestore"
	"countervalidator/pkg/serrors"
)

// Store is a filestore.Store rooted at a directory.
type Store struct {
	root      string
	publicURL string
}

var _ filestore.Store = (*Store)(nil)

// New returns a Store that keeps files below root and serves them from publicURL.
func New(root, publicURL string) *Store {
	return &Store{root: root, publicURL: strings.TrimSuffix(publicURL, "/")}
}

func (s *Store) abs(p string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(p))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", serrors.With(serrors.ErrBadRequest, "invalid file path %q", p)
	}

	return filepath.Join(s.root, clean), nil
}

// Save implements filestore.Store.
func (s *Store) Save(_ context.Context, name string, r io.Reader) (string, error) {
	p := filestore.NewPath(name, time.Now())
	full, err := s.abs(p)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return "", fmt.Errorf("could not create directory: %w", err)
	}

	f, err := os.OpenFile(full, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return "", fmt.Errorf("could not create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(full)

		return "", fmt.Errorf("could not write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("could not close file: %w", err)
	}

	return p, nil
}

// Open implements filestore.Store.
func (s *Store) Open(_ context.Context, p string) (io.ReadCloser, error) {
	full, err := s.abs(p)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, serrors.Wrap(serrors.ErrNotFound, err, "file not found")
	}
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}

	return f, nil
}

// Delete implements filestore.Store.
func (s *Store) Delete(_ context.Context, p string) error {
	full, err := s.abs(p)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not delete file: %w", err)
	}

	return nil
}

// URL implements filestore.Store.
func (s *Store) URL(p string) string {
	return s.publicURL + "/" + strings.TrimPrefix(p, "/")
}
