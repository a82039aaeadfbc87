package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	appConfig "github.com/festy23/scoreboard/internal/config"
	dbconfig "github.com/festy23/scoreboard/internal/database/config"
	"github.com/festy23/scoreboard/internal/database/database"
	"github.com/festy23/scoreboard/internal/database/migrate"
	snapshotModel "github.com/festy23/scoreboard/internal/snapshot/model"
	"github.com/festy23/scoreboard/internal/snapshot/repository"
)

const mongoConnectTimeout = 10 * time.Second

// openRepository connects the configured storage driver and prepares its schema.
// The returned closer releases the connection.
func openRepository(ctx context.Context, cfg appConfig.StorageConfig, logger *zap.SugaredLogger) (repository.Repository, func() error, error) {
	switch cfg.Driver {
	case appConfig.StorageSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := db.AutoMigrate(&snapshotModel.Record{}); err != nil {
			_ = database.Close(db)
			return nil, nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
		}
		logger.Infow("using sqlite storage", "path", cfg.SQLitePath)
		return repository.New(db, cfg.SnapshotKey, logger), func() error { return database.Close(db) }, nil

	case appConfig.StoragePostgres:
		pg := dbconfig.LoadPostgresFromEnv()
		db, err := database.OpenPostgres(ctx, pg, dbconfig.ConnectPolicyFromEnv(), logger)
		if err != nil {
			return nil, nil, err
		}
		version, err := migrate.Up(db, migrate.Dir())
		if err != nil {
			_ = database.Close(db)
			return nil, nil, err
		}
		logger.Infow("using postgres storage", "dsn", pg.String(), "schema_version", version)
		return repository.New(db, cfg.SnapshotKey, logger), func() error { return database.Close(db) }, nil

	case appConfig.StorageMongo:
		connectCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
		defer cancel()
		client, err := repository.ConnectMongo(connectCtx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		coll := client.Database(cfg.MongoDatabase).Collection(repository.CollectionName)
		logger.Infow("using mongo storage", "database", cfg.MongoDatabase)
		closer := func() error {
			closeCtx, closeCancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
			defer closeCancel()
			return client.Disconnect(closeCtx)
		}
		return repository.NewMongo(coll, cfg.SnapshotKey, logger), closer, nil

	case appConfig.StorageMemory:
		logger.Warnw("using in-memory storage, state is lost on restart")
		return repository.NewMemory(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
