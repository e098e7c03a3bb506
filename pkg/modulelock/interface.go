// Package modulelock hands out exclusive leases on validation modules so that
// every module processes at most one request at a time, across all workers.
//
//go:generate mockgen -package mockmodulelock -source=interface.go -destination=mock/mockmodulelock.go *
package modulelock

import "context"

// Lease is an exclusive hold on one validation module.
type Lease interface {
	// URL is the module the lease belongs to.
	URL() string
	// Release gives the module back. Releasing twice is a no-op.
	Release(ctx context.Context) error
}

// Locker picks and locks free validation modules.
type Locker interface {
	// Acquire locks the first free module, waiting until one frees up or ctx ends.
	Acquire(ctx context.Context) (Lease, error)
	// Locked reports whether the module is currently leased.
	Locked(ctx context.Context, url string) (bool, error)
}
