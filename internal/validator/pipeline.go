package validator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"countervalidator/internal/notify"
	"countervalidator/pkg/domain"
	"countervalidator/pkg/logger"
	"countervalidator/pkg/metrics"
	"countervalidator/pkg/serrors"
	"countervalidator/pkg/storage"
	"countervalidator/pkg/validationmodule"

	"go.uber.org/zap"
)

// Process sends the validation to the first free validation module and stores
// what comes back. Module and ingestion failures end the validation as FAILURE
// and return nil, since retrying would not change the outcome. Errors returned
// are worth a retry.
func (s *service) Process(ctx context.Context, id domain.ValidationID) error {
	ctx = logger.WithFields(ctx, logger.ValidationID(id))

	v, err := s.storage.ValidationByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get validation: %w", err)
	}
	if v == nil {
		return serrors.With(serrors.ErrNotFound, "validation %s was deleted", id)
	}

	v.Core.Status = domain.ValidationStatusRunning
	if err := s.storage.UpdateValidation(ctx, *v); err != nil {
		return fmt.Errorf("could not mark validation running: %w", err)
	}

	lease, err := s.locker.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("could not acquire validation module: %w", err)
	}
	ctx = logger.WithFields(ctx, zap.String("module", lease.URL()))

	start := time.Now()
	raw, callErr := s.callModule(ctx, lease.URL(), v)
	duration := time.Since(start).Seconds()
	if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
		logger.Warn(ctx, "could not release validation module", zap.Error(err))
	}
	v.Core.Duration = duration

	if callErr != nil {
		if isTransient(ctx, callErr) {
			return fmt.Errorf("validation interrupted: %w", callErr)
		}
		logger.Error(ctx, "validation module call failed", zap.Error(callErr))

		return s.finishFailed(ctx, v, callErr.Error(),
			"Validation failed", fmt.Sprintf("Validation %s failed: %s", v.ID, callErr))
	}

	res, err := validationmodule.Parse(raw)
	if err != nil {
		var schemaErr *validationmodule.SchemaError
		if !errors.As(err, &schemaErr) {
			return s.finishFailed(ctx, v, err.Error(),
				"Validation update failed", fmt.Sprintf("Validation %s update failed: %s", v.ID, err))
		}
		logger.Warn(ctx, "validation module returned invalid result", zap.Error(err))

		return s.finishFailed(ctx, v, schemaErr.Error(),
			"Validation module returned invalid result",
			fmt.Sprintf("Validation %s: module returned invalid result: %s", v.ID, schemaErr))
	}

	if err := s.ingest(ctx, v, res); err != nil {
		if isTransient(ctx, err) {
			return err
		}
		logger.Error(ctx, "could not store validation result", zap.Error(err))

		return s.finishFailed(ctx, v, err.Error(),
			"Validation update failed", fmt.Sprintf("Validation %s update failed: %s", v.ID, err))
	}

	metrics.ValidationsFinished.WithLabelValues("success").Inc()
	logger.Info(ctx, "validation finished",
		zap.Float64("duration", duration), zap.String("result", v.Core.ValidationResult.Label()))

	return nil
}

func (s *service) callModule(ctx context.Context, moduleURL string, v *domain.Validation) ([]byte, error) {
	if v.IsCounterAPI() {
		return s.modules.ValidateCounterAPI(ctx, moduleURL, v.CounterAPI.FullURL(v.Core.APIEndpoint)) //nolint: wrapcheck
	}

	f, err := s.files.Open(ctx, v.FilePath)
	if err != nil {
		return nil, fmt.Errorf("could not open validation file: %w", err)
	}
	defer f.Close()

	ext := strings.TrimPrefix(strings.ToLower(path.Ext(v.FilePath)), ".")

	return s.modules.ValidateFile(ctx, moduleURL, ext, f) //nolint: wrapcheck
}

// ingest stores the module result. A report returned for COUNTER API
// validations becomes the validation file.
func (s *service) ingest(ctx context.Context, v *domain.Validation, res *validationmodule.Response) error {
	if res.Report != nil && *res.Report != "" {
		if err := s.storeReport(ctx, v, res); err != nil {
			return err
		}
	}

	messages := v.AddResult(res.ResultData, res.Result.Messages)
	v.Core.UsedMemory = res.Memory
	v.Core.Status = domain.ValidationStatusSuccess
	if res.HasReportInfo() {
		v.Core.CoPVersion = res.CoPVersion()
		v.Core.ReportCode = res.ReportCode()
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.DeleteMessages(ctx, v.ID); err != nil {
			return fmt.Errorf("could not clear messages: %w", err)
		}
		if len(messages) > 0 {
			if err := tx.StoreMessages(ctx, messages...); err != nil {
				return fmt.Errorf("could not store messages: %w", err)
			}
		}
		if err := tx.UpdateValidation(ctx, *v); err != nil {
			return fmt.Errorf("could not update validation: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not store result: %w", err)
	}

	return nil
}

func (s *service) storeReport(ctx context.Context, v *domain.Validation, res *validationmodule.Response) error {
	report, err := validationmodule.DecodeReport(*res.Report)
	if err != nil {
		return fmt.Errorf("could not decode report: %w", err)
	}
	checksum, size, err := s.hasher.Checksum(bytes.NewReader(report))
	if err != nil {
		return fmt.Errorf("could not checksum report: %w", err)
	}

	ext := ".json"
	if res.Result.ReportInfo != nil && res.Result.ReportInfo.Format == "tabular" {
		ext = ".tsv"
	}
	filePath, err := s.files.Save(ctx, "report"+ext, bytes.NewReader(report))
	if err != nil {
		return fmt.Errorf("could not save report: %w", err)
	}
	if v.FilePath != "" && v.FilePath != filePath {
		if err := s.files.Delete(ctx, v.FilePath); err != nil {
			logger.Warn(ctx, "could not delete previous report", zap.String("path", v.FilePath), zap.Error(err))
		}
	}

	v.FilePath = filePath
	v.Filename = "COUNTER API " + v.Core.Created.UTC().Format(time.DateTime)
	v.Core.FileChecksum = checksum
	v.Core.FileSize = size

	return nil
}

// finishFailed records the failure and asks the admins to look into it.
func (s *service) finishFailed(ctx context.Context, v *domain.Validation, msg, subject, body string) error {
	v.Core.Status = domain.ValidationStatusFailure
	v.Core.SetErrorMessage(msg)

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.UpdateValidation(ctx, *v); err != nil {
			return fmt.Errorf("could not update validation: %w", err)
		}
		if _, err := tx.AddJob(ctx, notify.AdminsJobArgs{Subject: subject, Body: body}, nil); err != nil {
			return fmt.Errorf("could not add notification job: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not mark validation failed: %w", err)
	}
	metrics.ValidationsFinished.WithLabelValues("failure").Inc()

	return nil
}

func (s *service) Fail(ctx context.Context, id domain.ValidationID, msg string) error {
	if err := s.storage.MarkCoreFailed(ctx, id, truncate(msg, domain.MaxErrorMessageLength)); err != nil {
		return fmt.Errorf("could not mark validation failed: %w", err)
	}
	metrics.ValidationsFinished.WithLabelValues("failure").Inc()

	return nil
}
