package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"countervalidator/internal/validator"
	"countervalidator/pkg/domain"
	"countervalidator/pkg/logger"
	"countervalidator/pkg/serrors"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// process maps validation errors to River actions. A deleted validation
// cancels the job.
func process(ctx context.Context, svc validator.Service, jobID int64, id uuid.UUID) error {
	ctx = logger.WithFields(ctx, logger.JobID(jobID), logger.ValidationID(id))

	if err := svc.Process(ctx, domain.ValidationID(id)); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Info(ctx, "validation is gone, cancelling job")

			return river.JobCancel(err) //nolint: wrapcheck
		}
		logger.Error(ctx, "error processing validation", zap.Error(err))

		return fmt.Errorf("could not process validation: %w", err)
	}

	return nil
}

// FileWorker validates uploaded files.
type FileWorker struct {
	river.WorkerDefaults[validator.FileJobArgs]

	validator validator.Service
	timeout   time.Duration
}

// NewFileWorker constructs a FileWorker. A zero timeout falls back to the client default.
func NewFileWorker(svc validator.Service, timeout time.Duration) *FileWorker {
	return &FileWorker{validator: svc, timeout: timeout}
}

// Timeout lets a job wait for a module and for its answer.
func (w *FileWorker) Timeout(*river.Job[validator.FileJobArgs]) time.Duration { return w.timeout }

// Work processes a single file validation.
func (w *FileWorker) Work(ctx context.Context, job *river.Job[validator.FileJobArgs]) error {
	return process(ctx, w.validator, job.ID, job.Args.ValidationID)
}

// CounterAPIWorker validates COUNTER API endpoints.
type CounterAPIWorker struct {
	river.WorkerDefaults[validator.CounterAPIJobArgs]

	validator validator.Service
	timeout   time.Duration
}

// NewCounterAPIWorker constructs a CounterAPIWorker.
func NewCounterAPIWorker(svc validator.Service, timeout time.Duration) *CounterAPIWorker {
	return &CounterAPIWorker{validator: svc, timeout: timeout}
}

// Timeout lets a job wait for a module and for its answer.
func (w *CounterAPIWorker) Timeout(*river.Job[validator.CounterAPIJobArgs]) time.Duration {
	return w.timeout
}

// Work processes a single COUNTER API validation.
func (w *CounterAPIWorker) Work(ctx context.Context, job *river.Job[validator.CounterAPIJobArgs]) error {
	return process(ctx, w.validator, job.ID, job.Args.ValidationID)
}

// CleanupWorker deletes expired validations.
type CleanupWorker struct {
	river.WorkerDefaults[validator.CleanupJobArgs]

	validator validator.Service
}

// NewCleanupWorker constructs a CleanupWorker.
func NewCleanupWorker(svc validator.Service) *CleanupWorker {
	return &CleanupWorker{validator: svc}
}

func (w *CleanupWorker) Work(ctx context.Context, job *river.Job[validator.CleanupJobArgs]) error {
	ctx = logger.WithFields(ctx, logger.JobID(job.ID))

	n, err := w.validator.CleanupExpired(ctx)
	if err != nil {
		return fmt.Errorf("could not clean up expired validations: %w", err)
	}
	logger.Info(ctx, "expired validations deleted", zap.Int("count", n))

	return nil
}
