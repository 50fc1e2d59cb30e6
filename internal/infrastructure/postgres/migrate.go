package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-task-manager/internal/infrastructure/migrations"
)

// Migrate runs the embedded postgres migrations over a database/sql view of pool.
func Migrate(pool *pgxpool.Pool, logger *logrus.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()
	return migrations.Up(db, "postgres", logger)
}
