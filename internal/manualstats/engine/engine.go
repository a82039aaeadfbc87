// Package engine reconciles operator-entered records with the roster's points.
package engine

import (
	manualModel "github.com/festy23/scoreboard/internal/manualstats/model"
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	"github.com/festy23/scoreboard/internal/standings"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

// Apply replaces the records of the listed teams and moves each team's points by the
// change in implied league points. Negative counts are clamped to zero.
func Apply(roster teamModel.Roster, entries []manualModel.Entry) (teamModel.Roster, []teamModel.PointDelta, error) {
	if len(entries) == 0 {
		return nil, nil, manualModel.ErrEmptyStats
	}

	next := roster.Clone()
	var deltas []teamModel.PointDelta
	for _, e := range entries {
		i := next.Find(e.TeamID)
		if i < 0 {
			return nil, nil, teamModel.ErrTeamNotFound
		}
		rec := standings.Record{
			Wins:   max(e.Wins, 0),
			Draws:  max(e.Draws, 0),
			Losses: max(e.Losses, 0),
		}
		d := standings.LeaguePoints(rec) - standings.LeaguePoints(next[i].Record())
		next[i] = next[i].WithRecord(rec)
		if d != 0 {
			deltas = append(deltas, teamModel.PointDelta{TeamID: e.TeamID, Delta: d})
		}
	}

	return next.ApplyDeltas(deltas), deltas, nil
}

// ResetAll removes every team's implied league points and zeroes its record.
func ResetAll(roster teamModel.Roster, confirmed bool) (teamModel.Roster, []teamModel.PointDelta, error) {
	if !confirmed {
		return nil, nil, matchModel.ErrNotConfirmed
	}

	next := roster.Clone()
	var deltas []teamModel.PointDelta
	for i := range next {
		if p := standings.LeaguePoints(next[i].Record()); p != 0 {
			deltas = append(deltas, teamModel.PointDelta{TeamID: next[i].ID, Delta: -p})
		}
		next[i] = next[i].WithRecord(standings.Record{})
	}
	return next.ApplyDeltas(deltas), deltas, nil
}

// Table ranks the roster by implied league points.
func Table(roster teamModel.Roster) []manualModel.StatsRow {
	ranked := standings.Rank(roster, standings.LeagueFormula, teamModel.Team.Record)
	rows := make([]manualModel.StatsRow, 0, len(ranked))
	for i, t := range ranked {
		rows = append(rows, manualModel.StatsRow{
			Position:     i + 1,
			LeaguePoints: standings.LeaguePoints(t.Record()),
			Team:         t,
		})
	}
	return rows
}
