package model

import (
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	"github.com/festy23/scoreboard/internal/standings"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

// CreateLeagueRequest starts a new league.
type CreateLeagueRequest struct {
	Name string `json:"name"`
}

// RecordResultRequest sets the outcome of a league game.
type RecordResultRequest struct {
	Outcome string `json:"outcome" binding:"required"`
}

// ResetRequest carries the operator's confirmation.
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

// StandingRow is one line of the league table.
type StandingRow struct {
	Position     int    `json:"position"`
	TeamID       string `json:"team_id"`
	Name         string `json:"name"`
	Points       int    `json:"points"`
	Differential int    `json:"differential"`
	standings.Record
}

// LeagueResponse is the league view returned by every league endpoint.
type LeagueResponse struct {
	Phase           matchModel.Phase       `json:"phase"`
	League          *League                `json:"league"`
	Standings       []StandingRow          `json:"standings"`
	RemainingRounds int                    `json:"remaining_rounds"`
	Deltas          []teamModel.PointDelta `json:"deltas,omitempty"`
}
