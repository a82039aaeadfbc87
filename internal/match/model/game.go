// Package model provides the game and outcome types shared by leagues and tournaments.
package model

import "errors"

// Outcome is the recorded result of a game.
type Outcome string

const (
	// OutcomeTeam1 means the first team won.
	OutcomeTeam1 Outcome = "team1"
	// OutcomeTeam2 means the second team won.
	OutcomeTeam2 Outcome = "team2"
	// OutcomeDraw means the game was drawn.
	OutcomeDraw Outcome = "draw"
)

// ErrInvalidOutcome indicates an outcome outside {team1, team2, draw}.
var ErrInvalidOutcome = errors.New("invalid outcome")

// ParseOutcome validates a raw outcome string.
func ParseOutcome(s string) (Outcome, error) {
	switch o := Outcome(s); o {
	case OutcomeTeam1, OutcomeTeam2, OutcomeDraw:
		return o, nil
	default:
		return "", ErrInvalidOutcome
	}
}

// Game is a single fixture between two roster teams.
// Team ids may be empty while a bracket slot awaits a winner.
type Game struct {
	ID        string   `json:"id"`
	Team1ID   string   `json:"team1Id"`
	Team2ID   string   `json:"team2Id"`
	Result    *Outcome `json:"result,omitempty"`
	Completed bool     `json:"completed"`
}

// Record sets the outcome. A game stays completed once any result was set.
func (g Game) Record(o Outcome) Game {
	g.Result = &o
	g.Completed = true
	return g
}

// Clear removes the result.
func (g Game) Clear() Game {
	g.Result = nil
	g.Completed = false
	return g
}

// Winner returns the id of the winning team, or "" for draws and unplayed games.
func (g Game) Winner() string {
	if g.Result == nil {
		return ""
	}
	switch *g.Result {
	case OutcomeTeam1:
		return g.Team1ID
	case OutcomeTeam2:
		return g.Team2ID
	default:
		return ""
	}
}

// Loser returns the id of the losing team, or "" for draws and unplayed games.
func (g Game) Loser() string {
	if g.Result == nil {
		return ""
	}
	switch *g.Result {
	case OutcomeTeam1:
		return g.Team2ID
	case OutcomeTeam2:
		return g.Team1ID
	default:
		return ""
	}
}

// Clone returns a copy that shares no pointers with g.
func (g Game) Clone() Game {
	if g.Result != nil {
		o := *g.Result
		g.Result = &o
	}
	return g
}

// ErrNotConfirmed indicates that a destructive operation was not confirmed by the operator.
var ErrNotConfirmed = errors.New("operation requires confirmation")
