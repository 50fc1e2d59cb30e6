package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-task-manager/config"
	"github.com/oksasatya/go-task-manager/internal/domain/repository"
	"github.com/oksasatya/go-task-manager/internal/infrastructure/migrations"
	"github.com/oksasatya/go-task-manager/internal/infrastructure/postgres"
	"github.com/oksasatya/go-task-manager/internal/infrastructure/sqlite"
)

// Backend is a migrated storage backend and the repositories it serves.
type Backend struct {
	Driver string
	Repos  repository.Repositories
	close  func()
}

func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open connects to the backend selected by cfg.DBDriver and applies pending migrations.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Backend, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgres.Migrate(pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return &Backend{Driver: cfg.DBDriver, Repos: postgres.NewRepositories(pool), close: pool.Close}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := migrations.Up(db, "sqlite", logger); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return &Backend{Driver: cfg.DBDriver, Repos: sqlite.NewRepositories(db), close: closer(db)}, nil

	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

func closer(db *sql.DB) func() {
	return func() { _ = db.Close() }
}
