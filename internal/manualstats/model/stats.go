// Package model provides DTOs and errors for manual stats module.
package model

import (
	"errors"

	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

// ErrEmptyStats indicates that an apply request carried no entries.
var ErrEmptyStats = errors.New("stats list cannot be empty")

// Entry is the operator's replacement record for one team.
type Entry struct {
	TeamID string `json:"team_id" binding:"required"`
	Wins   int    `json:"wins"`
	Draws  int    `json:"draws"`
	Losses int    `json:"losses"`
}

// ApplyRequest replaces records for the listed teams.
type ApplyRequest struct {
	Stats []Entry `json:"stats" binding:"required,dive"`
}

// ResetRequest carries the operator's confirmation.
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

// StatsRow is one team's record with the league points it implies.
type StatsRow struct {
	Position     int `json:"position"`
	LeaguePoints int `json:"league_points"`
	teamModel.Team
}

// StatsResponse lists the roster ranked by implied league points.
type StatsResponse struct {
	Teams  []StatsRow             `json:"teams"`
	Deltas []teamModel.PointDelta `json:"deltas,omitempty"`
}
