// Package hashing computes the salted checksums stored with validations. Only
// checksums are kept for emails, files and SUSHI credentials.
package hashing

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"
)

const (
	// DefaultDigestSize is the digest length in bytes used when none is configured.
	DefaultDigestSize = 16

	maxKeySize = 16
)

// Hasher produces keyed blake2b checksums encoded as lowercase hex.
type Hasher struct {
	key        []byte
	digestSize int
}

// New returns a Hasher keyed by the first 16 bytes of salt. A digestSize
// outside 1..64 falls back to DefaultDigestSize.
func New(salt string, digestSize int) *Hasher {
	if digestSize <= 0 || digestSize > blake2b.Size {
		digestSize = DefaultDigestSize
	}
	key := []byte(salt)
	if len(key) > maxKeySize {
		key = key[:maxKeySize]
	}

	return &Hasher{key: key, digestSize: digestSize}
}

func (h *Hasher) newHash() hash.Hash {
	hh, err := blake2b.New(h.digestSize, h.key)
	if err != nil {
		// only reachable with an invalid size or key length, both checked in New
		panic(fmt.Sprintf("could not create blake2b hash: %v", err))
	}

	return hh
}

// Bytes hashes b.
func (h *Hasher) Bytes(b []byte) string {
	hh := h.newHash()
	_, _ = hh.Write(b)

	return hex.EncodeToString(hh.Sum(nil))
}

// String hashes s.
func (h *Hasher) String(s string) string {
	return h.Bytes([]byte(s))
}

// Checksum hashes everything read from r and returns the checksum together
// with the number of bytes read.
func (h *Hasher) Checksum(r io.Reader) (string, int64, error) {
	hh := h.newHash()
	n, err := io.Copy(hh, r)
	if err != nil {
		return "", n, fmt.Errorf("could not read data to hash: %w", err)
	}

	return hex.EncodeToString(hh.Sum(nil)), n, nil
}

// Map hashes the canonical JSON encoding of v: object keys are sorted and a nil
// value encodes as null.
func (h *Hasher) Map(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("could not encode value to hash: %w", err)
	}
	// re-decode into generic values so that struct fields and map keys end up
	// in the same sorted order
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return "", fmt.Errorf("could not decode value to hash: %w", err)
	}
	canonical, err := json.Marshal(generic)
	if err != nil {
		return "", fmt.Errorf("could not encode value to hash: %w", err)
	}

	return h.Bytes(canonical), nil
}
