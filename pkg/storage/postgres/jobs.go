package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"countervalidator/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// insertClient only inserts jobs; it never works them.
var insertClient = sync.OnceValues(func() (*river.Client[*sql.Tx], error) { //nolint: gochecknoglobals
	return river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
})

// AddJob inserts a job in the handle's transaction, or in a transaction of its
// own on a non-transactional handle.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		var inserted bool
		err := p.WithTx(ctx, func(s storage.AllStorage) error {
			var err error
			inserted, err = s.AddJob(ctx, args, opts)

			return err //nolint: wrapcheck
		})

		return inserted, err
	}

	client, err := insertClient()
	if err != nil {
		return false, fmt.Errorf("could not create river queue client: %w", err)
	}
	res, err := client.InsertTx(ctx, tx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}

type pgQueueCounts struct {
	Queued  int64 `db:"queued"`
	Running int64 `db:"running"`
}

// QueueCounts reads the river job table directly so it works on any handle,
// transactional or not.
func (p *PgSQL) QueueCounts(ctx context.Context, queue string) (storage.QueueCounts, error) {
	var row pgQueueCounts
	if _, err := p.Builder.From("river_job").
		Select(
			goqu.L("COUNT(*) FILTER (WHERE state IN ('available', 'scheduled', 'retryable'))").As("queued"),
			goqu.L("COUNT(*) FILTER (WHERE state = 'running')").As("running"),
		).
		Where(goqu.I("queue").Eq(queue)).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return storage.QueueCounts{}, fmt.Errorf("could not count queue jobs: %w", err)
	}

	return storage.QueueCounts{Queued: row.Queued, Running: row.Running}, nil
}
