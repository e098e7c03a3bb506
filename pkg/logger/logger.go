// Package logger keeps a zap logger in the context so request and job scoped
// fields follow a validation through the API, the workers and the modules.
package logger

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs human readable lines from debug level up.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment logs sampled JSON from info level up.
	ProductionEnvironment = "production"
)

var (
	defaultLogger = zap.NewNop()         //nolint: gochecknoglobals
	level         = zap.NewAtomicLevel() //nolint: gochecknoglobals
)

// Setup replaces the default logger with one configured for environment.
func Setup(environment string) {
	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	level.SetLevel(cfg.Level.Level())
	cfg.Level = level

	l, err := cfg.Build()
	if err != nil {
		return
	}
	defaultLogger = l.With(zap.String("env", environment))
}

// SetLevel changes the level of the default logger, e.g. "warn".
func SetLevel(name string) error {
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("could not parse log level: %w", err)
	}
	level.SetLevel(lvl)

	return nil
}

type key struct{}

// Get returns the logger stored in ctx or the default one.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}

	return defaultLogger
}

func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields stores a logger carrying fields in ctx.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Slog bridges the context logger to log/slog for libraries that expect it.
func Slog(ctx context.Context) *slog.Logger {
	return slog.New(zapslog.NewHandler(Get(ctx).Core()))
}

func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

// ValidationID is the field every validation related line carries.
func ValidationID(id fmt.Stringer) zapcore.Field { return zap.Stringer("validationID", id) }

func UserID(id fmt.Stringer) zapcore.Field { return zap.Stringer("userID", id) }

func JobID(id int64) zapcore.Field { return zap.Int64("jobID", id) }

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) { Get(ctx).Debug(msg, fields...) }
func Info(ctx context.Context, msg string, fields ...zapcore.Field)  { Get(ctx).Info(msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...zapcore.Field)  { Get(ctx).Warn(msg, fields...) }
func Error(ctx context.Context, msg string, fields ...zapcore.Field) { Get(ctx).Error(msg, fields...) }

// Fatal logs and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) { Get(ctx).Fatal(msg, fields...) }
