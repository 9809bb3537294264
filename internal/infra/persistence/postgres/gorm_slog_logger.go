package postgres

import (
	"context"
	"log/slog"
	"time"

	"kusina/config"
	"kusina/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger adapts GORM's logger interface onto the application's
// slog.Logger so SQL traces land in the same structured stream.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(logger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &gormSlogLogger{
		logger:        logger,
		level:         level,
		slowThreshold: slowQueryThreshold,
	}
}

// LogMode implements gormlogger.Interface.
func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

// Info implements gormlogger.Interface.
func (l *gormSlogLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		l.logger.InfoContext(ctx, msg, slog.Any("data", data))
	}
}

// Warn implements gormlogger.Interface.
func (l *gormSlogLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		l.logger.WarnContext(ctx, msg, slog.Any("data", data))
	}
}

// Error implements gormlogger.Interface.
func (l *gormSlogLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		l.logger.ErrorContext(ctx, msg, slog.Any("data", data))
	}
}

// Trace implements gormlogger.Interface.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs = append(attrs, slog.Any("error", err))
		l.logger.LogAttrs(ctx, slog.LevelError, "SQL execution failed", attrs...)
	case elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Slow SQL detected", attrs...)
	case l.level >= gormlogger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "SQL executed", attrs...)
	}
}
