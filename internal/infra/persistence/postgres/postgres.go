package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"greenlake/config"
	"greenlake/internal/domain/lifecycle"
	"greenlake/internal/errors"
	"greenlake/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the GreenLake database through the shared go-lib connector. The
// returned handle translates constraint violations and skips implicit transactions.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Unique and foreign-key violations come back as gorm.ErrDuplicatedKey and
	// gorm.ErrForeignKeyViolated, which the repositories map to domain errors.
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Checkout and redemption run their multi-step writes through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// monitorDBPool publishes pool gauges on every tick and warns when requests
// queued for a connection long enough to hurt checkout latency.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			recordPoolStats(prev, cur)

			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration
			if waitDelta > 0 && waitDurationDelta >= dbPoolWarnDurationThreshold {
				logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected",
					slog.Int64("waitCount", waitDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("inUseConns", cur.InUse),
				)
			}

			prev = cur
		}
	}
}

func recordPoolStats(prev, cur sql.DBStats) {
	metrics.DBPoolConnections.WithLabelValues("open").Set(float64(cur.OpenConnections))
	metrics.DBPoolConnections.WithLabelValues("in_use").Set(float64(cur.InUse))
	metrics.DBPoolConnections.WithLabelValues("idle").Set(float64(cur.Idle))
	if wait := cur.WaitDuration - prev.WaitDuration; wait > 0 {
		metrics.DBPoolWaitSeconds.Add(wait.Seconds())
	}
}
