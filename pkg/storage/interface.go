// Package storage declares what the services need from persistence. Lookups
// return nil without an error when nothing matches.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is every capability available both inside and outside a
// transaction.
type AllStorage interface {
	UserStorage
	APIKeyStorage
	RegistryStorage
	ValidationStorage
	CoreStorage
	MessageStorage
	JobStorage
}

// TxStorage is unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

type Storage interface {
	AllStorage

	Close() error

	// Begin fails with ErrAlreadyInTx when called on a transactional handle.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx commits when cb returns nil and rolls back otherwise. Jobs added
	// inside cb are enqueued only on commit.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
