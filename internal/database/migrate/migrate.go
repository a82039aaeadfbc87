// Package migrate applies the PostgreSQL schema of the snapshots table.
package migrate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	appConfig "github.com/festy23/scoreboard/internal/config"
)

// ErrDirty is returned when a previous migration stopped half way.
var ErrDirty = errors.New("snapshot schema is dirty")

// Dir returns the migrations directory, MIGRATIONS_PATH or ./migrations.
func Dir() string {
	return appConfig.GetEnv("MIGRATIONS_PATH", "migrations")
}

// sourceURL resolves dir to a file:// URL the migrate source can open.
func sourceURL(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve migrations path %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("migrations directory does not exist: %s", abs)
		}
		return "", fmt.Errorf("failed to stat migrations directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("migrations path is not a directory: %s", abs)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// Latest returns the highest migration version found in dir.
func Latest(dir string) (uint, error) {
	url, err := sourceURL(dir)
	if err != nil {
		return 0, err
	}
	src, err := source.Open(url)
	if err != nil {
		return 0, fmt.Errorf("failed to open migrations: %w", err)
	}
	defer func() { _ = src.Close() }()

	version, err := src.First()
	if err != nil {
		return 0, fmt.Errorf("no migrations in %s: %w", dir, err)
	}
	for {
		next, err := src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			return version, nil
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read migrations: %w", err)
		}
		version = next
	}
}

// Up brings the snapshots schema of db to the latest version in dir and
// returns the version now applied.
func Up(db *gorm.DB, dir string) (uint, error) {
	if db == nil {
		return 0, fmt.Errorf("database connection is nil")
	}
	url, err := sourceURL(dir)
	if err != nil {
		return 0, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return 0, fmt.Errorf("failed to create postgres driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance(url, "postgres", driver)
	if err != nil {
		return 0, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("%w at version %d", ErrDirty, version)
	}
	return version, nil
}
