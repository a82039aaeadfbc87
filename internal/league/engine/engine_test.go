package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	leagueModel "github.com/festy23/scoreboard/internal/league/model"
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	"github.com/festy23/scoreboard/internal/standings"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

func newLeague(t *testing.T) *leagueModel.League {
	t.Helper()
	l, err := Create("league-1", "Spring Cup", teamModel.InitialRoster())
	require.NoError(t, err)
	return l
}

func playRound(t *testing.T, l *leagueModel.League, n int, outcome matchModel.Outcome) *leagueModel.League {
	t.Helper()
	round, ok := l.Round(n)
	require.True(t, ok)
	for _, g := range round.Games {
		tr, err := RecordResult(l, round.ID, g.ID, outcome)
		require.NoError(t, err)
		l = tr.League
	}
	return l
}

func deltaFor(deltas []teamModel.PointDelta, id string) int {
	total := 0
	for _, d := range deltas {
		if d.TeamID == id {
			total += d.Delta
		}
	}
	return total
}

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		roster := teamModel.InitialRoster()
		roster[0].Wins = 4
		roster[0].Points = 900

		l, err := Create("league-1", "  Spring Cup  ", roster)

		require.NoError(t, err)
		assert.Equal(t, "Spring Cup", l.Name)
		assert.Equal(t, 1, l.CurrentRound)
		assert.False(t, l.Completed)
		assert.Len(t, l.Rounds, leagueModel.TotalRounds)
		require.Len(t, l.Teams, 8)
		assert.Zero(t, l.Teams[0].Wins, "league snapshot starts with zeroed records")
		assert.Equal(t, 4, roster[0].Wins, "roster must not be mutated")
	})

	t.Run("blank name", func(t *testing.T) {
		l, err := Create("league-1", "   ", teamModel.InitialRoster())

		assert.Nil(t, l)
		assert.ErrorIs(t, err, leagueModel.ErrInvalidLeagueName)
	})

	t.Run("wrong roster size", func(t *testing.T) {
		_, err := Create("league-1", "Cup", teamModel.InitialRoster()[:5])
		assert.ErrorIs(t, err, leagueModel.ErrInvalidRoster)
	})
}

func TestRecordResult(t *testing.T) {
	t.Run("win updates records and emits deltas", func(t *testing.T) {
		l := newLeague(t)

		tr, err := RecordResult(l, "round-1", "round-1-game-1", matchModel.OutcomeTeam1)

		require.NoError(t, err)
		winner, _ := tr.League.Teams.Get("team-1")
		loser, _ := tr.League.Teams.Get("team-2")
		assert.Equal(t, 1, winner.Wins)
		assert.Equal(t, 1, loser.Losses)
		assert.Equal(t, []teamModel.PointDelta{{TeamID: "team-1", Delta: 300}}, tr.Deltas)
		assert.Nil(t, l.Rounds[0].Games[0].Result, "input league must not be mutated")
	})

	t.Run("overwriting keeps only the latest outcome", func(t *testing.T) {
		l := newLeague(t)

		first, err := RecordResult(l, "round-1", "round-1-game-1", matchModel.OutcomeTeam1)
		require.NoError(t, err)
		second, err := RecordResult(first.League, "round-1", "round-1-game-1", matchModel.OutcomeDraw)
		require.NoError(t, err)

		game := second.League.Rounds[0].Games[0]
		require.NotNil(t, game.Result)
		assert.Equal(t, matchModel.OutcomeDraw, *game.Result)

		a, _ := second.League.Teams.Get("team-1")
		b, _ := second.League.Teams.Get("team-2")
		assert.Equal(t, standings.Record{Draws: 1}, a.Record())
		assert.Equal(t, standings.Record{Draws: 1}, b.Record())

		assert.Equal(t, -250, deltaFor(second.Deltas, "team-1"))
		assert.Equal(t, 50, deltaFor(second.Deltas, "team-2"))
	})

	t.Run("same outcome twice yields no delta", func(t *testing.T) {
		l := newLeague(t)
		first, err := RecordResult(l, "round-1", "round-1-game-2", matchModel.OutcomeTeam2)
		require.NoError(t, err)

		second, err := RecordResult(first.League, "round-1", "round-1-game-2", matchModel.OutcomeTeam2)

		require.NoError(t, err)
		assert.Empty(t, second.Deltas)
		assert.Equal(t, first.League.Teams, second.League.Teams)
	})

	t.Run("round completes when every game is played", func(t *testing.T) {
		l := newLeague(t)
		l = playRound(t, l, 1, matchModel.OutcomeDraw)

		assert.True(t, l.Rounds[0].Completed)
		assert.False(t, l.Rounds[1].Completed)
	})

	t.Run("unknown round", func(t *testing.T) {
		_, err := RecordResult(newLeague(t), "round-99", "round-1-game-1", matchModel.OutcomeTeam1)
		assert.ErrorIs(t, err, leagueModel.ErrRoundNotFound)
	})

	t.Run("unknown game", func(t *testing.T) {
		_, err := RecordResult(newLeague(t), "round-1", "round-2-game-1", matchModel.OutcomeTeam1)
		assert.ErrorIs(t, err, leagueModel.ErrGameNotFound)
	})

	t.Run("invalid outcome", func(t *testing.T) {
		_, err := RecordResult(newLeague(t), "round-1", "round-1-game-1", matchModel.Outcome("bye"))
		assert.ErrorIs(t, err, matchModel.ErrInvalidOutcome)
	})

	t.Run("no league", func(t *testing.T) {
		_, err := RecordResult(nil, "round-1", "round-1-game-1", matchModel.OutcomeTeam1)
		assert.ErrorIs(t, err, leagueModel.ErrLeagueNotStarted)
	})
}

func TestRecordResult_DeltasTrackFormula(t *testing.T) {
	l := newLeague(t)
	roster := teamModel.InitialRoster()

	for _, n := range []int{1, 2, 3} {
		round, _ := l.Round(n)
		for i, g := range round.Games {
			outcome := matchModel.OutcomeTeam1
			if i%2 == 1 {
				outcome = matchModel.OutcomeDraw
			}
			tr, err := RecordResult(l, round.ID, g.ID, outcome)
			require.NoError(t, err)
			l = tr.League
			roster = roster.ApplyDeltas(tr.Deltas)
		}
	}

	for _, team := range l.Teams {
		current, _ := roster.Get(team.ID)
		assert.Equal(t, standings.LeaguePoints(team.Record()), current.Points, team.ID)
	}
}

func TestAdvanceRound(t *testing.T) {
	t.Run("not ready", func(t *testing.T) {
		l := newLeague(t)
		tr, err := RecordResult(l, "round-1", "round-1-game-1", matchModel.OutcomeTeam1)
		require.NoError(t, err)

		next, err := AdvanceRound(tr.League)

		assert.Nil(t, next)
		assert.ErrorIs(t, err, leagueModel.ErrRoundNotReady)
	})

	t.Run("moves to next round", func(t *testing.T) {
		l := playRound(t, newLeague(t), 1, matchModel.OutcomeTeam1)

		next, err := AdvanceRound(l)

		require.NoError(t, err)
		assert.Equal(t, 2, next.CurrentRound)
		assert.False(t, next.Completed)
		assert.Equal(t, 1, l.CurrentRound)
	})

	t.Run("completes after last round", func(t *testing.T) {
		l := newLeague(t)
		for n := 1; n <= leagueModel.TotalRounds; n++ {
			l = playRound(t, l, n, matchModel.OutcomeTeam2)
			next, err := AdvanceRound(l)
			require.NoError(t, err)
			l = next
			if n < leagueModel.TotalRounds {
				assert.False(t, l.Completed)
			}
		}

		assert.True(t, l.Completed)
		assert.Equal(t, leagueModel.TotalRounds, l.CurrentRound)
		assert.Equal(t, 1, RemainingRounds(l))
	})

	t.Run("no league", func(t *testing.T) {
		_, err := AdvanceRound(nil)
		assert.ErrorIs(t, err, leagueModel.ErrLeagueNotStarted)
	})
}

func TestReset(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		l := playRound(t, newLeague(t), 1, matchModel.OutcomeTeam1)

		tr, err := Reset(l, false)

		assert.ErrorIs(t, err, matchModel.ErrNotConfirmed)
		assert.Nil(t, tr.League)
	})

	t.Run("clears results and reverses roster points", func(t *testing.T) {
		l := newLeague(t)
		roster := teamModel.InitialRoster()
		roster[3].Points = 40

		round, _ := l.Round(1)
		for _, g := range round.Games {
			tr, err := RecordResult(l, round.ID, g.ID, matchModel.OutcomeTeam1)
			require.NoError(t, err)
			l = tr.League
			roster = roster.ApplyDeltas(tr.Deltas)
		}
		next, err := AdvanceRound(l)
		require.NoError(t, err)
		l = next

		tr, err := Reset(l, true)
		require.NoError(t, err)
		roster = roster.ApplyDeltas(tr.Deltas)

		assert.Equal(t, 1, tr.League.CurrentRound)
		assert.False(t, tr.League.Completed)
		for _, team := range tr.League.Teams {
			assert.Equal(t, standings.Record{}, team.Record())
		}
		for _, r := range tr.League.Rounds {
			assert.False(t, r.Completed)
			for _, g := range r.Games {
				assert.False(t, g.Completed)
				assert.Nil(t, g.Result)
			}
		}
		for _, team := range roster {
			expected := 0
			if team.ID == "team-4" {
				expected = 40
			}
			assert.Equal(t, expected, team.Points, team.ID)
		}
		assert.Equal(t, l.ID, tr.League.ID)
		assert.Equal(t, l.Rounds[2].Games[1].ID, tr.League.Rounds[2].Games[1].ID)
	})
}

func TestStandings(t *testing.T) {
	l := newLeague(t)
	tr, err := RecordResult(l, "round-1", "round-1-game-2", matchModel.OutcomeTeam1)
	require.NoError(t, err)
	tr, err = RecordResult(tr.League, "round-1", "round-1-game-1", matchModel.OutcomeDraw)
	require.NoError(t, err)

	roster := teamModel.InitialRoster()
	roster[2].Name = "Renamed"

	rows := Standings(tr.League, roster, standings.LeagueFormula)

	require.Len(t, rows, 8)
	assert.Equal(t, "team-3", rows[0].TeamID)
	assert.Equal(t, "Renamed", rows[0].Name)
	assert.Equal(t, 300, rows[0].Points)
	assert.Equal(t, 1, rows[0].Differential)
	assert.Equal(t, "team-1", rows[1].TeamID)
	assert.Equal(t, "team-2", rows[2].TeamID)
	assert.Equal(t, "team-4", rows[len(rows)-1].TeamID)
	assert.Equal(t, 8, rows[len(rows)-1].Position)
}

func TestStandings_NoLeague(t *testing.T) {
	assert.Empty(t, Standings(nil, teamModel.InitialRoster(), standings.LeagueFormula))
}

func TestRecomputeStandings(t *testing.T) {
	teams := teamModel.Roster{{ID: "a", Wins: 5}, {ID: "b"}, {ID: "c"}}
	played := func(a, b string, o matchModel.Outcome) matchModel.Game {
		return matchModel.Game{Team1ID: a, Team2ID: b}.Record(o)
	}
	rounds := []leagueModel.Round{
		{Games: []matchModel.Game{played("a", "b", matchModel.OutcomeTeam1), {Team1ID: "b", Team2ID: "c"}}},
		{Games: []matchModel.Game{played("b", "c", matchModel.OutcomeDraw), played("a", "ghost", matchModel.OutcomeTeam1)}},
		{Games: []matchModel.Game{played("c", "a", matchModel.OutcomeTeam1)}},
	}

	out := RecomputeStandings(teams, rounds)

	assert.Equal(t, standings.Record{Wins: 1, Losses: 1}, out[0].Record())
	assert.Equal(t, standings.Record{Draws: 1, Losses: 1}, out[1].Record())
	assert.Equal(t, standings.Record{Wins: 1, Draws: 1}, out[2].Record())
	assert.Equal(t, 5, teams[0].Wins)
}
