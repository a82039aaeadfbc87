package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	leagueModel "github.com/festy23/scoreboard/internal/league/model"
	"github.com/festy23/scoreboard/internal/snapshot/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.Record{})
	require.NoError(t, err)

	return db
}

func sampleSnapshot() *model.Snapshot {
	s := model.Initial()
	s.GameMode = model.ModeLeague
	s.Teams[0].Points = 650
	s.League = &leagueModel.League{ID: "league-1", Name: "Cup", CurrentRound: 3}
	return &s
}

func TestRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing stored", func(t *testing.T) {
		repo := New(setupTestDB(t), "", zap.NewNop().Sugar())

		s, err := repo.Load(ctx)

		assert.Nil(t, s)
		assert.ErrorIs(t, err, model.ErrSnapshotNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		repo := New(setupTestDB(t), "", zap.NewNop().Sugar())
		require.NoError(t, repo.Save(ctx, sampleSnapshot()))

		s, err := repo.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, model.ModeLeague, s.GameMode)
		assert.Equal(t, 650, s.Teams[0].Points)
		require.NotNil(t, s.League)
		assert.Equal(t, 3, s.League.CurrentRound)
		assert.Nil(t, s.Tournament)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, "", zap.NewNop().Sugar())
		db.Exec("INSERT INTO snapshots (snapshot_key, payload, updated_at) VALUES (?, ?, ?)", DefaultKey, "{not json", time.Now())

		_, err := repo.Load(ctx)

		assert.ErrorIs(t, err, model.ErrInvalidFormat)
	})
}

func TestRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites single row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, "", zap.NewNop().Sugar())

		first := sampleSnapshot()
		require.NoError(t, repo.Save(ctx, first))
		second := sampleSnapshot()
		second.Teams[0].Points = 1
		require.NoError(t, repo.Save(ctx, second))

		var count int64
		db.Model(&model.Record{}).Count(&count)
		assert.Equal(t, int64(1), count)

		s, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Teams[0].Points)
	})

	t.Run("keys are isolated", func(t *testing.T) {
		db := setupTestDB(t)
		a := New(db, "a", zap.NewNop().Sugar())
		b := New(db, "b", zap.NewNop().Sugar())

		require.NoError(t, a.Save(ctx, sampleSnapshot()))

		_, err := b.Load(ctx)
		assert.ErrorIs(t, err, model.ErrSnapshotNotFound)
	})
}

func TestRepository_Ping(t *testing.T) {
	repo := New(setupTestDB(t), "", zap.NewNop().Sugar())
	assert.NoError(t, repo.Ping(context.Background()))
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, model.ErrSnapshotNotFound)

	require.NoError(t, repo.Save(ctx, sampleSnapshot()))
	s, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cup", s.League.Name)
	assert.NoError(t, repo.Ping(ctx))
}

func TestDecode(t *testing.T) {
	_, err := Decode([]byte("<html>"))
	assert.ErrorIs(t, err, model.ErrInvalidFormat)

	s, err := Decode([]byte(`{"gameMode":"final","teams":[]}`))
	require.NoError(t, err)
	assert.Equal(t, model.ModeFinal, s.GameMode)
}
