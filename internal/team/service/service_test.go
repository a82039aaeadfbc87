package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	snapshotModel "github.com/festy23/scoreboard/internal/snapshot/model"
	"github.com/festy23/scoreboard/internal/snapshot/store"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

func setupService(t *testing.T) (Service, *store.Store) {
	t.Helper()
	st := store.New(snapshotModel.Initial(), zap.NewNop().Sugar())
	return New(st, zap.NewNop().Sugar()), st
}

func TestService_List(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.SetPoints(ctx, "team-3", 500)
	require.NoError(t, err)
	_, err = svc.SetPoints(ctx, "team-5", 200)
	require.NoError(t, err)

	resp, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Teams, teamModel.RosterSize)
	assert.Equal(t, "team-3", resp.Teams[0].ID)
	assert.Equal(t, 1, resp.Teams[0].Rank)
	assert.Equal(t, "team-5", resp.Teams[1].ID)
	// Zero-point ties keep roster order.
	assert.Equal(t, "team-1", resp.Teams[2].ID)
	assert.Equal(t, 8, resp.Teams[7].Rank)
}

func TestService_AdjustPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("adds change", func(t *testing.T) {
		svc, st := setupService(t)
		resp, err := svc.AdjustPoints(ctx, "team-1", 50)
		require.NoError(t, err)
		assert.Equal(t, 50, resp.Team.Points)
		assert.Equal(t, uint64(1), st.Version())
	})

	t.Run("clamps at zero", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.AdjustPoints(ctx, "team-1", 30)
		require.NoError(t, err)

		resp, err := svc.AdjustPoints(ctx, "team-1", -100)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Team.Points)
	})

	t.Run("unknown team leaves state unchanged", func(t *testing.T) {
		svc, st := setupService(t)
		_, err := svc.AdjustPoints(ctx, "team-99", 10)
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
		assert.Equal(t, uint64(0), st.Version())
	})
}

func TestService_SetPoints(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	resp, err := svc.SetPoints(ctx, "team-2", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Team.Points)

	resp, err = svc.SetPoints(ctx, "team-2", 1200)
	require.NoError(t, err)
	assert.Equal(t, 1200, resp.Team.Points)
}

func TestService_Rename(t *testing.T) {
	ctx := context.Background()

	t.Run("trims name", func(t *testing.T) {
		svc, st := setupService(t)
		resp, err := svc.Rename(ctx, "team-4", "  Falcons ")
		require.NoError(t, err)
		assert.Equal(t, "Falcons", resp.Team.Name)
		assert.Equal(t, "Falcons", st.Snapshot().Teams.NameOf("team-4"))
	})

	t.Run("blank name", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Rename(ctx, "team-4", "   ")
		assert.ErrorIs(t, err, teamModel.ErrInvalidTeamName)
	})

	t.Run("unknown team", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Rename(ctx, "nope", "Falcons")
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})
}

func TestService_Search(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Rename(ctx, "team-1", "Red Dragons")
	require.NoError(t, err)
	_, err = svc.Rename(ctx, "team-2", "Blue Sharks")
	require.NoError(t, err)

	t.Run("finds by fragment ignoring case", func(t *testing.T) {
		resp, err := svc.Search(ctx, "drag")
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "team-1", resp.Results[0].Team.ID)
	})

	t.Run("closer names rank first", func(t *testing.T) {
		resp, err := svc.Search(ctx, "team 7")
		require.NoError(t, err)
		require.NotEmpty(t, resp.Results)
		assert.Equal(t, "team-7", resp.Results[0].Team.ID)
		assert.Equal(t, 0, resp.Results[0].Distance)
	})

	t.Run("no matches", func(t *testing.T) {
		resp, err := svc.Search(ctx, "zzzz")
		require.NoError(t, err)
		assert.Empty(t, resp.Results)
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := svc.Search(ctx, "  ")
		assert.ErrorIs(t, err, teamModel.ErrEmptyQuery)
	})
}
