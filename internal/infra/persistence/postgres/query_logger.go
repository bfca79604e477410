package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"greenlake/config"
	"greenlake/internal/errors"
	"greenlake/internal/infra/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultSlowQuery = 200 * time.Millisecond
	maxLoggedSQL     = 2048
)

// queryLogger routes gorm logging to slog and records statement latency.
type queryLogger struct {
	logger    *slog.Logger
	level     logger.LogLevel
	slowQuery time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &queryLogger{
		logger:    base,
		level:     logger.Warn,
		slowQuery: defaultSlowQuery,
	}
	if cfg != nil {
		if cfg.Env.Debug {
			l.level = logger.Info
		}
		if cfg.Env.Log.SlowQuery > 0 {
			l.slowQuery = cfg.Env.Log.SlowQuery
		}
	}

	return l
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) log(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < min {
		return
	}

	l.logger.LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace observes every statement. Missing rows are an expected outcome for the
// repositories and are neither logged nor counted as errors.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	metrics.DBQueryDuration.WithLabelValues(sqlVerb(sql), outcome).Observe(elapsed.Seconds())

	if l.logger == nil || l.level == logger.Silent {
		return
	}

	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", truncateSQL(sql)),
	}

	switch {
	case failed && l.level >= logger.Error:
		attrs = append(attrs, slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "Database query failed", attrs...)
	case elapsed > l.slowQuery && l.level >= logger.Warn:
		attrs = append(attrs, slog.Duration("threshold", l.slowQuery))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Slow database query", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Database query", attrs...)
	}
}

// sqlVerb returns the leading keyword of a statement, lower-cased.
func sqlVerb(sql string) string {
	verb, _, _ := strings.Cut(strings.TrimSpace(sql), " ")
	switch verb = strings.ToLower(verb); verb {
	case "select", "insert", "update", "delete", "begin", "commit", "rollback", "savepoint":
		return verb
	default:
		return "other"
	}
}

func truncateSQL(sql string) string {
	if len(sql) <= maxLoggedSQL {
		return sql
	}

	return sql[:maxLoggedSQL] + "..."
}
