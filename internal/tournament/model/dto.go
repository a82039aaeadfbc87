package model

import (
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

// CreateTournamentRequest starts a new tournament.
type CreateTournamentRequest struct {
	Name    string   `json:"name"`
	TeamIDs []string `json:"team_ids"`
}

// RecordResultRequest sets the winner of a bracket game.
type RecordResultRequest struct {
	Outcome string `json:"outcome" binding:"required"`
}

// ResetRequest carries the operator's confirmation.
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

// Results are the placings derived from the recorded games.
type Results struct {
	Champion        *teamModel.Team  `json:"champion,omitempty"`
	RunnerUp        *teamModel.Team  `json:"runner_up,omitempty"`
	SemifinalLosers []teamModel.Team `json:"semifinal_losers"`
}

// CurrentGame is the next game to play with its display title.
type CurrentGame struct {
	Title string          `json:"title"`
	Game  matchModel.Game `json:"game"`
}

// TournamentResponse is the tournament view returned by every tournament endpoint.
type TournamentResponse struct {
	Phase       matchModel.Phase `json:"phase"`
	Tournament  *Tournament      `json:"tournament"`
	CurrentGame *CurrentGame     `json:"current_game"`
	Results     *Results         `json:"results,omitempty"`
}
