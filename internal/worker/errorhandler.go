package worker

import (
	"context"
	"fmt"

	"countervalidator/internal/validator"
	"countervalidator/pkg/domain"
	"countervalidator/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// ErrorHandler marks a validation as failed once River gives up on its job.
type ErrorHandler struct {
	validator validator.Service
}

// NewErrorHandler constructs an ErrorHandler.
func NewErrorHandler(svc validator.Service) *ErrorHandler {
	return &ErrorHandler{validator: svc}
}

var _ river.ErrorHandler = (*ErrorHandler)(nil)

func (h *ErrorHandler) HandleError(ctx context.Context, job *rivertype.JobRow, err error) *river.ErrorHandlerResult {
	h.failIfFinal(ctx, job, err.Error())

	return nil
}

func (h *ErrorHandler) HandlePanic(ctx context.Context,
	job *rivertype.JobRow,
	panicVal any,
	trace string) *river.ErrorHandlerResult {
	logger.Error(ctx, "job panicked",
		logger.JobID(job.ID), zap.Any("panic", panicVal), zap.String("trace", trace))
	h.failIfFinal(ctx, job, fmt.Sprintf("panic: %v", panicVal))

	return nil
}

func (h *ErrorHandler) failIfFinal(ctx context.Context, job *rivertype.JobRow, msg string) {
	if job.Attempt < job.MaxAttempts {
		return
	}
	if job.Kind != (validator.FileJobArgs{}).Kind() && job.Kind != (validator.CounterAPIJobArgs{}).Kind() {
		return
	}

	var args struct {
		ValidationID uuid.UUID `json:"validation_id"`
	}
	if err := json.Unmarshal(job.EncodedArgs, &args); err != nil {
		logger.Error(ctx, "could not decode validation job args", logger.JobID(job.ID), zap.Error(err))

		return
	}

	ctx = logger.WithFields(ctx, logger.JobID(job.ID), logger.ValidationID(args.ValidationID))
	if err := h.validator.Fail(ctx, domain.ValidationID(args.ValidationID), msg); err != nil {
		logger.Error(ctx, "could not mark validation failed", zap.Error(err))

		return
	}
	logger.Warn(ctx, "validation failed after last attempt", zap.String("error", msg))
}
