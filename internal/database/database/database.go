// Package database opens the gorm connections behind the SQL snapshot repository.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/festy23/scoreboard/internal/database/config"
	"github.com/festy23/scoreboard/internal/database/pool"
	"github.com/festy23/scoreboard/pkg/retry"
)

// ErrNilDB is returned for operations on a missing connection.
var ErrNilDB = errors.New("database connection is nil")

// OpenPostgres dials PostgreSQL, retrying under policy until ctx is done.
// Each failed attempt is logged with the password masked.
func OpenPostgres(ctx context.Context, cfg config.Postgres, policy retry.Policy, logger *zap.SugaredLogger) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy.OnRetry = func(attempt int, err error, wait time.Duration) {
		logger.Warnw("postgres not reachable, retrying",
			"dsn", cfg.String(), "attempt", attempt, "wait", wait, "error", cfg.Redact(err))
	}

	db, err := retry.Value(ctx, policy, func(ctx context.Context) (*gorm.DB, error) {
		db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig())
		if err != nil {
			return nil, err
		}
		if err := Ping(ctx, db); err != nil {
			_ = Close(db)
			return nil, err
		}
		return db, nil
	})
	if err != nil {
		return nil, cfg.Redact(err)
	}

	if err := pool.Apply(db, pool.Postgres()); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to size postgres pool: %w", err)
	}
	return db, nil
}

// OpenSQLite opens a SQLite database file, or ":memory:", as a single writer.
func OpenSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	if err := pool.Apply(db, pool.SQLite()); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to size sqlite pool: %w", err)
	}
	return db, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}
}

// Ping checks that the connection answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return ErrNilDB
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the connection. A nil db is ignored.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
