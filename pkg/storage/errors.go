package storage

import "errors"

var (
	ErrAlreadyInTx = errors.New("already in tx")
	ErrNotInTx     = errors.New("not in tx")
	// ErrDuplicate is returned when a unique column (user email, api key
	// prefix, public id) already holds the stored value.
	ErrDuplicate = errors.New("duplicate value")
)
