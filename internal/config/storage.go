package config

import (
	"fmt"
	"time"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
	StorageMemory   = "memory"
)

// StorageConfig selects and configures the snapshot repository.
type StorageConfig struct {
	// Driver is one of sqlite, postgres, mongo, memory.
	Driver string
	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string
	// MongoURI is the connection string used by the mongo driver.
	MongoURI string
	// MongoDatabase is the database holding the snapshots collection.
	MongoDatabase string
	// SnapshotKey identifies the stored snapshot document.
	SnapshotKey string
	// SaveTimeout bounds one background save, retries included.
	SaveTimeout time.Duration
}

// LoadStorageConfigFromEnv loads storage configuration from environment variables.
func LoadStorageConfigFromEnv() StorageConfig {
	return StorageConfig{
		Driver:        GetEnv("STORAGE_DRIVER", StorageSQLite),
		SQLitePath:    GetEnv("SQLITE_PATH", "scoreboard.db"),
		MongoURI:      GetEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: GetEnv("MONGO_DATABASE", "scoreboard"),
		SnapshotKey:   GetEnv("SNAPSHOT_KEY", "scoreboard-data"),
		SaveTimeout:   GetEnvDuration("STORAGE_SAVE_TIMEOUT", 10*time.Second),
	}
}

// Validate validates storage configuration.
func (c StorageConfig) Validate() error {
	switch c.Driver {
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for sqlite storage")
		}
	case StorageMongo:
		if c.MongoURI == "" || c.MongoDatabase == "" {
			return fmt.Errorf("MONGO_URI and MONGO_DATABASE are required for mongo storage")
		}
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER: %s (must be: sqlite, postgres, mongo, memory)", c.Driver)
	}
	if c.SnapshotKey == "" {
		return fmt.Errorf("SNAPSHOT_KEY must not be empty")
	}
	if c.SaveTimeout <= 0 {
		return fmt.Errorf("STORAGE_SAVE_TIMEOUT must be positive")
	}
	return nil
}
