// Package model provides domain models and DTOs for league module.
package model

import (
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

const (
	// TotalRounds is the number of rounds in an 8-team round robin.
	TotalRounds = 7
	// GamesPerRound is the number of simultaneous games in a round.
	GamesPerRound = 4
)

// Round is one matchday of the league schedule.
type Round struct {
	ID          string            `json:"id"`
	RoundNumber int               `json:"roundNumber"`
	Games       []matchModel.Game `json:"games"`
	Completed   bool              `json:"completed"`
}

// AllGamesCompleted reports whether every game in the round has a result.
func (r Round) AllGamesCompleted() bool {
	for _, g := range r.Games {
		if !g.Completed {
			return false
		}
	}
	return true
}

// League is a round-robin competition. Teams is the league's own copy of the roster;
// only derived points flow back to the primary roster.
type League struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Teams        teamModel.Roster `json:"teams"`
	Rounds       []Round          `json:"rounds"`
	CurrentRound int              `json:"currentRound"`
	Completed    bool             `json:"completed"`
}

// Clone returns a deep copy.
func (l *League) Clone() *League {
	if l == nil {
		return nil
	}
	out := *l
	out.Teams = l.Teams.Clone()
	out.Rounds = make([]Round, len(l.Rounds))
	for i, r := range l.Rounds {
		games := make([]matchModel.Game, len(r.Games))
		for j, g := range r.Games {
			games[j] = g.Clone()
		}
		r.Games = games
		out.Rounds[i] = r
	}
	return &out
}

// Round returns the round with number n.
func (l *League) Round(n int) (Round, bool) {
	for _, r := range l.Rounds {
		if r.RoundNumber == n {
			return r, true
		}
	}
	return Round{}, false
}

// PhaseOf derives the lifecycle state from an optional league.
func PhaseOf(l *League) matchModel.Phase {
	switch {
	case l == nil:
		return matchModel.PhaseNotStarted
	case l.Completed:
		return matchModel.PhaseCompleted
	default:
		return matchModel.PhaseInProgress
	}
}
