// Package filestore keeps uploaded and generated report files.
package filestore

import (
	"context"
	"crypto/rand"
	"io"
	"path"
	"strings"
	"time"
)

// Dir is the prefix under which validation files are stored.
const Dir = "file_validations"

// Store saves files and hands out their public URLs. Paths returned by Save
// are relative to the store root and are what gets persisted.
//
//go:generate mockgen -package mockfilestore -source=interface.go -destination=mock/mockfilestore.go *
type Store interface {
	// Save writes r under a fresh path derived from name and returns that path.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	// Open returns the content stored at p. Missing files are serrors.ErrNotFound.
	Open(ctx context.Context, p string) (io.ReadCloser, error)
	// Delete removes p. Deleting a missing file is not an error.
	Delete(ctx context.Context, p string) error
	// URL returns the address clients can download p from.
	URL(p string) string
}

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewPath builds a unique relative path keeping the extension of name.
func NewPath(name string, now time.Time) string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}

	return path.Join(Dir, now.UTC().Format("20060102-150405")+"-"+string(b)+strings.ToLower(path.Ext(name)))
}
