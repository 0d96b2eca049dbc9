package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"folio/config"
	"folio/internal/domain/lifecycle"
	"folio/internal/errors"
	"folio/internal/infra/persistence/migrations"

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

// New opens the PostgreSQL connection pool. On start it pings the primary, applies the embedded
// migrations when migration.autoMigrate is set and begins watching the pool for connection waits.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-statement writes go through TransactionManager.Execute.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	autoMigrate := params.Config.Migration != nil && params.Config.Migration.AutoMigrate
	watcher := &poolWatcher{logger: params.Logger, stats: sqlDB.Stats}
	watchCtx, stopWatching := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := open(startCtx, sqlDB, params.Logger, autoMigrate); err != nil {
				return err
			}
			go watcher.run(watchCtx, poolCheckInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatching()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func open(ctx context.Context, sqlDB *sql.DB, logger *slog.Logger, autoMigrate bool) error {
	pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}
	if !autoMigrate {
		return nil
	}

	return migrations.Up(ctx, sqlDB, logger)
}

// poolWatcher reports callers that had to wait for a free connection since the previous check.
type poolWatcher struct {
	logger *slog.Logger
	stats  func() sql.DBStats
	prev   sql.DBStats
}

func (w *poolWatcher) run(ctx context.Context, interval time.Duration) {
	if w.logger == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.prev = w.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *poolWatcher) check(ctx context.Context) {
	cur := w.stats()
	waits := cur.WaitCount - w.prev.WaitCount
	waited := cur.WaitDuration - w.prev.WaitDuration
	w.prev = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}
	w.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)
}
