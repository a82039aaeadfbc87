// Package model provides data transfer objects for the final scores view.
package model

import (
	leagueModel "github.com/festy23/scoreboard/internal/league/model"
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
	tournamentModel "github.com/festy23/scoreboard/internal/tournament/model"
)

// LeagueSummary is the league table under the view's formula.
type LeagueSummary struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	Phase     matchModel.Phase          `json:"phase"`
	Standings []leagueModel.StandingRow `json:"standings"`
}

// TournamentSummary carries the bracket placings.
type TournamentSummary struct {
	ID      string                   `json:"id"`
	Name    string                   `json:"name"`
	Phase   matchModel.Phase         `json:"phase"`
	Results *tournamentModel.Results `json:"results,omitempty"`
}

// FinalScoresResponse combines every competition into one view.
// Formula names the table formula; roster points always follow the league formula.
type FinalScoresResponse struct {
	Formula    string                 `json:"formula"`
	Dashboard  []teamModel.RankedTeam `json:"dashboard"`
	League     *LeagueSummary         `json:"league"`
	Tournament *TournamentSummary     `json:"tournament"`
}
