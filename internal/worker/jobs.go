package worker

import (
	"context"
	"fmt"
	"time"

	"countervalidator/internal/notify"
	"countervalidator/internal/registry"
	"countervalidator/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// RegistrySyncWorker mirrors the COUNTER registry.
type RegistrySyncWorker struct {
	river.WorkerDefaults[registry.SyncJobArgs]

	registry registry.Service
}

// NewRegistrySyncWorker constructs a RegistrySyncWorker.
func NewRegistrySyncWorker(svc registry.Service) *RegistrySyncWorker {
	return &RegistrySyncWorker{registry: svc}
}

func (w *RegistrySyncWorker) Timeout(*river.Job[registry.SyncJobArgs]) time.Duration {
	return 30 * time.Minute
}

func (w *RegistrySyncWorker) Work(ctx context.Context, job *river.Job[registry.SyncJobArgs]) error {
	ctx = logger.WithFields(ctx, logger.JobID(job.ID))

	res, err := w.registry.Sync(ctx)
	if err != nil {
		logger.Error(ctx, "registry sync failed", zap.Error(err))

		return fmt.Errorf("could not sync registry: %w", err)
	}
	logger.Info(ctx, "registry synced",
		zap.Int("platforms", res.Platforms), zap.Int("sushiServices", res.SushiServices))

	return nil
}

// NotifyAdminsWorker mails admins.
type NotifyAdminsWorker struct {
	river.WorkerDefaults[notify.AdminsJobArgs]

	notify notify.Service
}

// NewNotifyAdminsWorker constructs a NotifyAdminsWorker.
func NewNotifyAdminsWorker(svc notify.Service) *NotifyAdminsWorker {
	return &NotifyAdminsWorker{notify: svc}
}

func (w *NotifyAdminsWorker) Work(ctx context.Context, job *river.Job[notify.AdminsJobArgs]) error {
	if err := w.notify.NotifyAdmins(ctx, job.Args.Subject, job.Args.Body); err != nil {
		return fmt.Errorf("could not notify admins: %w", err)
	}

	return nil
}

// DailyReportWorker sends the daily validation report.
type DailyReportWorker struct {
	river.WorkerDefaults[notify.DailyReportJobArgs]

	notify notify.Service
	now    func() time.Time
}

// NewDailyReportWorker constructs a DailyReportWorker.
func NewDailyReportWorker(svc notify.Service) *DailyReportWorker {
	return &DailyReportWorker{notify: svc, now: time.Now}
}

func (w *DailyReportWorker) Work(ctx context.Context, _ *river.Job[notify.DailyReportJobArgs]) error {
	if err := w.notify.DailyReport(ctx, w.now().UTC()); err != nil {
		return fmt.Errorf("could not send daily report: %w", err)
	}

	return nil
}
