package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// QueueCounts reports how many jobs of a queue wait and run.
type QueueCounts struct {
	// Queued counts available, scheduled and retryable jobs.
	Queued  int64
	Running int64
}

// JobStorage enqueues background jobs and inspects queues. AddJob participates
// in the surrounding transaction when the storage handle is transactional, so a
// job becomes visible only together with the rows it refers to.
type JobStorage interface {
	// AddJob enqueues a new job. It reports false when a unique job was skipped
	// as duplicate.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
	// QueueCounts counts the jobs of a queue by state.
	QueueCounts(ctx context.Context, queue string) (QueueCounts, error)
}
