// Package worker runs the background jobs: validations, cleanup of expired
// validations, registry sync and mail notifications.
package worker

import (
	"context"
	"fmt"
	"time"

	"countervalidator/internal/config"
	"countervalidator/internal/notify"
	"countervalidator/internal/registry"
	"countervalidator/internal/validator"
	"countervalidator/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

const defaultQueueWorkers = 10

// Options configure queues and periodic jobs.
type Options struct {
	// ValidationWorkers is the number of validation modules.
	ValidationWorkers int
	// ValidationTimeout bounds one validation job, waiting for a module included.
	ValidationTimeout    time.Duration
	CleanupInterval      time.Duration
	RegistrySyncInterval time.Duration
	// DailyReportHour is the UTC hour the daily report is sent at.
	DailyReportHour int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ValidationWorkers:    len(cfg.ValidationModules.URLs),
		ValidationTimeout:    cfg.ValidationModules.LockTimeout + cfg.ValidationModules.RequestTimeout,
		CleanupInterval:      cfg.Worker.CleanupInterval,
		RegistrySyncInterval: cfg.Worker.RegistrySyncInterval,
		DailyReportHour:      cfg.Worker.DailyReportHour,
	}
}

// Deps are the services jobs delegate to.
type Deps struct {
	Validator validator.Service
	Registry  registry.Service
	Notify    notify.Service
}

// NewWorkers registers a worker for every job kind.
func NewWorkers(deps Deps, options Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewFileWorker(deps.Validator, options.ValidationTimeout))
	river.AddWorker(workers, NewCounterAPIWorker(deps.Validator, options.ValidationTimeout))
	river.AddWorker(workers, NewCleanupWorker(deps.Validator))
	river.AddWorker(workers, NewRegistrySyncWorker(deps.Registry))
	river.AddWorker(workers, NewNotifyAdminsWorker(deps.Notify))
	river.AddWorker(workers, NewDailyReportWorker(deps.Notify))

	return workers
}

// PeriodicJobs lists the jobs River schedules by itself.
func PeriodicJobs(options Options) []*river.PeriodicJob {
	var jobs []*river.PeriodicJob
	if options.CleanupInterval > 0 {
		jobs = append(jobs, river.NewPeriodicJob(
			river.PeriodicInterval(options.CleanupInterval),
			func() (river.JobArgs, *river.InsertOpts) { return validator.CleanupJobArgs{}, nil },
			&river.PeriodicJobOpts{RunOnStart: true},
		))
	}
	if options.RegistrySyncInterval > 0 {
		jobs = append(jobs, river.NewPeriodicJob(
			river.PeriodicInterval(options.RegistrySyncInterval),
			func() (river.JobArgs, *river.InsertOpts) { return registry.SyncJobArgs{}, nil },
			&river.PeriodicJobOpts{RunOnStart: true},
		))
	}
	jobs = append(jobs, river.NewPeriodicJob(
		DailyAt(options.DailyReportHour),
		func() (river.JobArgs, *river.InsertOpts) { return notify.DailyReportJobArgs{}, nil },
		nil,
	))

	return jobs
}

// Start creates and starts the River client processing all queues.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, options Options) (*river.Client[pgx.Tx], error) {
	validationWorkers := options.ValidationWorkers
	if validationWorkers < 1 {
		validationWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault:        {MaxWorkers: defaultQueueWorkers},
			validator.QueueValidation: {MaxWorkers: validationWorkers},
		},
		Workers:      NewWorkers(deps, options),
		PeriodicJobs: PeriodicJobs(options),
		ErrorHandler: NewErrorHandler(deps.Validator),
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

type dailyAt struct {
	hour int
}

// DailyAt schedules a periodic job once a day at the given UTC hour.
func DailyAt(hour int) river.PeriodicSchedule {
	return dailyAt{hour: ((hour % 24) + 24) % 24}
}

func (d dailyAt) Next(current time.Time) time.Time {
	current = current.UTC()
	next := time.Date(current.Year(), current.Month(), current.Day(), d.hour, 0, 0, 0, time.UTC)
	if !next.After(current) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}
