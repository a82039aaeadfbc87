// Package engine implements league state transitions as pure functions.
// No function here mutates its input; every transition returns fresh values.
package engine

import (
	"strings"

	leagueModel "github.com/festy23/scoreboard/internal/league/model"
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	"github.com/festy23/scoreboard/internal/schedule"
	"github.com/festy23/scoreboard/internal/standings"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

// Transition is the outcome of a league write: the new league and the point
// adjustments the primary roster must absorb.
type Transition struct {
	League *leagueModel.League
	Deltas []teamModel.PointDelta
}

// Create starts a league named name over a snapshot of roster with zeroed records.
func Create(id, name string, roster teamModel.Roster) (*leagueModel.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, leagueModel.ErrInvalidLeagueName
	}

	rounds, err := schedule.RoundRobin(roster.IDs())
	if err != nil {
		return nil, err
	}

	teams := roster.Clone()
	for i := range teams {
		teams[i] = teams[i].WithRecord(standings.Record{})
	}

	return &leagueModel.League{
		ID:           id,
		Name:         name,
		Teams:        teams,
		Rounds:       rounds,
		CurrentRound: 1,
	}, nil
}

// RecordResult sets the outcome of one game, overwriting any earlier outcome, and
// recomputes every record from the full game history.
func RecordResult(l *leagueModel.League, roundID, gameID string, outcome matchModel.Outcome) (Transition, error) {
	if l == nil {
		return Transition{}, leagueModel.ErrLeagueNotStarted
	}
	if _, err := matchModel.ParseOutcome(string(outcome)); err != nil {
		return Transition{}, err
	}

	ri, gi, err := locate(l, roundID, gameID)
	if err != nil {
		return Transition{}, err
	}

	next := l.Clone()
	round := &next.Rounds[ri]
	round.Games[gi] = round.Games[gi].Record(outcome)
	round.Completed = round.AllGamesCompleted()

	next.Teams = RecomputeStandings(next.Teams, next.Rounds)

	return Transition{
		League: next,
		Deltas: pointDeltas(l.Teams, next.Teams),
	}, nil
}

// AdvanceRound moves to the next round once the current one is complete.
// Advancing past the last round completes the league.
func AdvanceRound(l *leagueModel.League) (*leagueModel.League, error) {
	if l == nil {
		return nil, leagueModel.ErrLeagueNotStarted
	}

	current, ok := l.Round(l.CurrentRound)
	if !ok || !current.AllGamesCompleted() {
		return nil, leagueModel.ErrRoundNotReady
	}

	next := l.Clone()
	if next.CurrentRound >= len(next.Rounds) {
		next.Completed = true
		return next, nil
	}
	next.CurrentRound++
	return next, nil
}

// Reset clears every result and record while keeping the schedule. The returned deltas
// remove all league points previously pushed to the roster.
func Reset(l *leagueModel.League, confirmed bool) (Transition, error) {
	if !confirmed {
		return Transition{}, matchModel.ErrNotConfirmed
	}
	if l == nil {
		return Transition{}, leagueModel.ErrLeagueNotStarted
	}

	next := l.Clone()
	for i := range next.Teams {
		next.Teams[i] = next.Teams[i].WithRecord(standings.Record{})
	}
	for i := range next.Rounds {
		next.Rounds[i].Completed = false
		for j := range next.Rounds[i].Games {
			next.Rounds[i].Games[j] = next.Rounds[i].Games[j].Clear()
		}
	}
	next.CurrentRound = 1
	next.Completed = false

	return Transition{
		League: next,
		Deltas: pointDeltas(l.Teams, next.Teams),
	}, nil
}

func locate(l *leagueModel.League, roundID, gameID string) (int, int, error) {
	for ri, r := range l.Rounds {
		if r.ID != roundID {
			continue
		}
		for gi, g := range r.Games {
			if g.ID == gameID {
				return ri, gi, nil
			}
		}
		return 0, 0, leagueModel.ErrGameNotFound
	}
	return 0, 0, leagueModel.ErrRoundNotFound
}

// pointDeltas compares league points before and after a write, team by team.
func pointDeltas(before, after teamModel.Roster) []teamModel.PointDelta {
	var deltas []teamModel.PointDelta
	for _, team := range after {
		prev := standings.Record{}
		if old, ok := before.Get(team.ID); ok {
			prev = old.Record()
		}
		d := standings.LeaguePoints(team.Record()) - standings.LeaguePoints(prev)
		if d != 0 {
			deltas = append(deltas, teamModel.PointDelta{TeamID: team.ID, Delta: d})
		}
	}
	return deltas
}
