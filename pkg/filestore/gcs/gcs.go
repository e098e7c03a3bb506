// Package gcs stores files in a Google Cloud Storage bucket.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"countervalidator/pkg/filestore"
	"countervalidator/pkg/serrors"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Store is a filestore.Store backed by one bucket.
type Store struct {
	client    *storage.Client
	bucket    string
	publicURL string
}

var _ filestore.Store = (*Store)(nil)

// New creates the storage client. Application default credentials are used
// unless credentialsJSON is set. An empty publicURL serves objects from
// storage.googleapis.com.
func New(ctx context.Context, bucket, credentialsJSON, publicURL string) (*Store, error) {
	if bucket == "" {
		return nil, errors.New("gcs bucket is required")
	}
	var opts []option.ClientOption
	if strings.TrimSpace(credentialsJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create gcs client: %w", err)
	}
	if publicURL == "" {
		publicURL = "https://storage.googleapis.com/" + bucket
	}

	return &Store{client: client, bucket: bucket, publicURL: strings.TrimSuffix(publicURL, "/")}, nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Save implements filestore.Store.
func (s *Store) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	p := filestore.NewPath(name, time.Now())
	w := s.client.Bucket(s.bucket).Object(p).If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		w.ContentType = ct
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", fmt.Errorf("could not upload object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("could not finish upload: %w", err)
	}

	return p, nil
}

// Open implements filestore.Store.
func (s *Store) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	rc, err := s.client.Bucket(s.bucket).Object(p).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, serrors.Wrap(serrors.ErrNotFound, err, "file not found")
	}
	if err != nil {
		return nil, fmt.Errorf("could not open object: %w", err)
	}

	return rc, nil
}

// Delete implements filestore.Store.
func (s *Store) Delete(ctx context.Context, p string) error {
	err := s.client.Bucket(s.bucket).Object(p).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("could not delete object: %w", err)
	}

	return nil
}

// URL implements filestore.Store.
func (s *Store) URL(p string) string {
	return s.publicURL + "/" + strings.TrimPrefix(p, "/")
}
