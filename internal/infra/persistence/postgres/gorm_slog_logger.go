package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gymtrack/config"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger sends GORM output to slog. Failed and slow statements are always
// reported, every statement only in debug mode.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	l := &gormSlogLogger{
		level:         gormlogger.Warn,
		slowThreshold: defaultGormSlowThreshold,
	}
	if cfg != nil {
		if cfg.Env.Debug {
			l.level = gormlogger.Info
		}
		if cfg.Database.SlowQueryThreshold > 0 {
			l.slowThreshold = cfg.Database.SlowQueryThreshold
		}
	}
	if baseLogger != nil {
		l.logger = baseLogger.With(slog.String("component", "gorm"))
	}

	return l
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	statement := func(extra ...slog.Attr) []slog.Attr {
		sql, rows := sqlAndRowsFn()

		return append([]slog.Attr{
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		}, extra...)
	}

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		// not found is an expected outcome, repositories map it themselves
		l.logger.LogAttrs(ctx, slog.LevelError, "GORM query failed", statement(slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "GORM slow query", statement(slog.Duration("slowThreshold", l.slowThreshold))...)
	case l.level >= gormlogger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "GORM query", statement()...)
	}
}
