package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/festy23/scoreboard/internal/database/config"
	"github.com/festy23/scoreboard/pkg/retry"
)

func TestOpenPostgres(t *testing.T) {
	cfg := config.Postgres{
		Host:     "127.0.0.1",
		Port:     "1",
		User:     "scoreboard",
		Password: "hunter2",
		Database: "scoreboard",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
	policy := retry.Connect()
	policy.Attempts = 2
	policy.BaseDelay = time.Millisecond

	t.Run("unreachable server is retried and redacted", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)

		db, err := OpenPostgres(context.Background(), cfg, policy, zap.New(core).Sugar())
		require.Error(t, err)
		assert.Nil(t, db)
		assert.Contains(t, err.Error(), "127.0.0.1:1/scoreboard")
		assert.NotContains(t, err.Error(), "hunter2")

		retries := logs.FilterMessage("postgres not reachable, retrying").All()
		require.Len(t, retries, 1)
		assert.NotContains(t, retries[0].ContextMap()["dsn"], "hunter2")
	})

	t.Run("invalid settings fail without dialing", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)

		_, err := OpenPostgres(context.Background(), config.Postgres{}, policy, zap.New(core).Sugar())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_HOST")
		assert.Zero(t, logs.Len())
	})
}

func TestOpenSQLite(t *testing.T) {
	t.Run("file database is created", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scoreboard.db")
		db, err := OpenSQLite(path)
		require.NoError(t, err)
		defer func() { _ = Close(db) }()

		assert.NoError(t, Ping(context.Background(), db))
		assert.FileExists(t, path)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("in-memory tables survive between queries", func(t *testing.T) {
		db, err := OpenSQLite(":memory:")
		require.NoError(t, err)
		defer func() { _ = Close(db) }()

		require.NoError(t, db.Exec("CREATE TABLE snapshots (snapshot_key TEXT PRIMARY KEY)").Error)
		var n int64
		assert.NoError(t, db.Table("snapshots").Count(&n).Error)
	})

	t.Run("empty path", func(t *testing.T) {
		db, err := OpenSQLite("")
		assert.EqualError(t, err, "sqlite path is empty")
		assert.Nil(t, db)
	})
}

func TestPing(t *testing.T) {
	assert.ErrorIs(t, Ping(context.Background(), nil), ErrNilDB)

	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, Close(db))

	err = Ping(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database ping failed")
}

func TestClose(t *testing.T) {
	assert.NoError(t, Close(nil))

	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	assert.NoError(t, Close(db))
}
