package logger_test

import (
	"context"
	"testing"

	"countervalidator/pkg/domain"
	"countervalidator/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestSetupAndLevel(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		require.NotPanics(t, func() { logger.Setup(env) }, env)
		require.NotNil(t, logger.Get(context.Background()))
	}

	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(context.Background()))

	require.NoError(t, logger.SetLevel("warn"))
	require.False(t, logger.IsDebug(context.Background()))
	require.Error(t, logger.SetLevel("loud"))

	require.NoError(t, logger.SetLevel("debug"))
}

func TestGetPrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	def := logger.Get(context.Background())

	ctx, _ := observed(zap.InfoLevel)
	require.NotSame(t, def, logger.Get(ctx))
	require.False(t, logger.IsDebug(ctx))
}

func TestWithFieldsCarriesValidationScope(t *testing.T) {
	ctx, logs := observed(zap.DebugLevel)
	validationID := uuid.New()
	userID := uuid.New()

	ctx = logger.WithFields(ctx, logger.ValidationID(validationID), logger.JobID(7))
	ctx = logger.WithFields(ctx, logger.UserID(userID))
	logger.Info(ctx, "validation finished", zap.String("result", "Passed"))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.Equal(t, validationID.String(), fields["validationID"])
	require.Equal(t, userID.String(), fields["userID"])
	require.Equal(t, int64(7), fields["jobID"])
	require.Equal(t, "Passed", fields["result"])
}

func TestValidationIDAcceptsDomainID(t *testing.T) {
	ctx, logs := observed(zap.InfoLevel)
	id := domain.ValidationID(uuid.Must(uuid.NewV7()))

	logger.Info(ctx, "queued", logger.ValidationID(id), logger.UserID(domain.UserID(uuid.New())))

	require.Equal(t, 1, logs.Len())
	require.Equal(t, id.String(), logs.All()[0].ContextMap()["validationID"])
}

func TestLevelsAndSlog(t *testing.T) {
	ctx, logs := observed(zap.InfoLevel)

	logger.Debug(ctx, "dropped")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")
	logger.Slog(ctx).Warn("from river", "queue", "default")

	require.Equal(t, 4, logs.Len())
	last := logs.All()[3]
	require.Equal(t, zap.WarnLevel, last.Level)
	require.Equal(t, "from river", last.Message)
	require.Equal(t, "default", last.ContextMap()["queue"])
}
