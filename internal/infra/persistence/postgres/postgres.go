package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"gymtrack/config"
	"gymtrack/internal/domain/lifecycle"
	"gymtrack/internal/errors"
	"gymtrack/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL pool, optionally migrates the schema, and pings on start.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	if params.Config.Database.AutoMigrate {
		if err := db.AutoMigrate(model.All()...); err != nil {
			return nil, errors.Wrap(err, "failed to migrate schema")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{logger: params.Logger, stats: sqlDB.Stats}
	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitor.run(monitorCtx, poolCheckInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor reports callers that had to wait for a free connection.
type poolMonitor struct {
	logger *slog.Logger
	stats  func() sql.DBStats
	prev   sql.DBStats
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	if m.logger == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.prev = m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// check compares the pool against the previous sample. Quiet unless someone waited.
func (m *poolMonitor) check(ctx context.Context) {
	cur := m.stats()
	waits := cur.WaitCount - m.prev.WaitCount
	waited := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpen", cur.MaxOpenConnections),
		slog.Int("open", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
