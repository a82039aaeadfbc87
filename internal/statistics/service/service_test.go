package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	leagueService "github.com/festy23/scoreboard/internal/league/service"
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	snapshotModel "github.com/festy23/scoreboard/internal/snapshot/model"
	"github.com/festy23/scoreboard/internal/snapshot/store"
	"github.com/festy23/scoreboard/internal/standings"
	teamService "github.com/festy23/scoreboard/internal/team/service"
	tournamentService "github.com/festy23/scoreboard/internal/tournament/service"
)

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(snapshotModel.Initial(), zap.NewNop().Sugar())
}

func TestService_FinalScores_Empty(t *testing.T) {
	svc := New(setupStore(t), standings.LeagueFormula, zap.NewNop().Sugar())

	resp, err := svc.FinalScores(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "league", resp.Formula)
	assert.Len(t, resp.Dashboard, 8)
	assert.Nil(t, resp.League)
	assert.Nil(t, resp.Tournament)
}

func TestService_FinalScores_League(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop().Sugar()
	st := setupStore(t)

	league := leagueService.New(st, logger)
	_, err := league.Create(ctx, "Spring")
	require.NoError(t, err)
	_, err = league.RecordResult(ctx, "round-1", "round-1-game-1", "team1")
	require.NoError(t, err)
	_, err = league.RecordResult(ctx, "round-1", "round-1-game-2", "draw")
	require.NoError(t, err)

	t.Run("configured formula", func(t *testing.T) {
		svc := New(st, standings.LeagueFormula, logger)

		resp, err := svc.FinalScores(ctx, "")
		require.NoError(t, err)
		require.NotNil(t, resp.League)
		assert.Equal(t, "Spring", resp.League.Name)
		assert.Equal(t, matchModel.PhaseInProgress, resp.League.Phase)
		assert.Equal(t, 300, resp.League.Standings[0].Points)
		assert.Equal(t, 300, resp.Dashboard[0].Points)
		assert.Equal(t, 1, resp.Dashboard[0].Rank)
	})

	t.Run("classic formula keeps roster points", func(t *testing.T) {
		svc := New(st, standings.ClassicFormula, logger)

		resp, err := svc.FinalScores(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "classic", resp.Formula)
		assert.Equal(t, 3, resp.League.Standings[0].Points)
		assert.Equal(t, 1, resp.League.Standings[1].Points)
		assert.Equal(t, 300, resp.Dashboard[0].Points)
	})

	t.Run("override by name", func(t *testing.T) {
		svc := New(st, standings.LeagueFormula, logger)

		resp, err := svc.FinalScores(ctx, "classic")
		require.NoError(t, err)
		assert.Equal(t, "classic", resp.Formula)

		_, err = svc.FinalScores(ctx, "elo")
		assert.ErrorIs(t, err, standings.ErrUnknownFormula)
	})
}

func TestService_FinalScores_Tournament(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop().Sugar()
	st := setupStore(t)

	tournament := tournamentService.New(st, logger)
	_, err := tournament.Create(ctx, "Cup", []string{"team-1", "team-2", "team-3", "team-4"})
	require.NoError(t, err)
	_, err = tournament.RecordResult(ctx, "semi1", "team1")
	require.NoError(t, err)
	_, err = tournament.RecordResult(ctx, "semi2", "team2")
	require.NoError(t, err)
	_, err = tournament.RecordResult(ctx, "final", "team2")
	require.NoError(t, err)

	_, err = teamService.New(st, logger).Rename(ctx, "team-4", "Wolves")
	require.NoError(t, err)

	svc := New(st, standings.LeagueFormula, logger)
	resp, err := svc.FinalScores(ctx, "")
	require.NoError(t, err)

	require.NotNil(t, resp.Tournament)
	assert.Equal(t, matchModel.PhaseCompleted, resp.Tournament.Phase)
	require.NotNil(t, resp.Tournament.Results)
	assert.Equal(t, "Wolves", resp.Tournament.Results.Champion.Name)
	assert.Equal(t, "team-1", resp.Tournament.Results.RunnerUp.ID)
	assert.Len(t, resp.Tournament.Results.SemifinalLosers, 2)
	assert.Nil(t, resp.League)
}
