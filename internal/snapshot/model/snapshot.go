// Package model provides the persisted application snapshot.
package model

import (
	leagueModel "github.com/festy23/scoreboard/internal/league/model"
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
	tournamentModel "github.com/festy23/scoreboard/internal/tournament/model"
)

// GameMode is the screen the operator last selected.
type GameMode string

const (
	ModeDashboard   GameMode = "dashboard"
	ModeLeague      GameMode = "league"
	ModeTournament  GameMode = "tournament"
	ModeFinal       GameMode = "final"
	ModeManualStats GameMode = "manual-stats"
)

// ParseGameMode validates a raw game mode.
func ParseGameMode(s string) (GameMode, error) {
	switch m := GameMode(s); m {
	case ModeDashboard, ModeLeague, ModeTournament, ModeFinal, ModeManualStats:
		return m, nil
	default:
		return "", ErrInvalidGameMode
	}
}

// Snapshot is the whole application state. A nil League or Tournament means
// the competition has not been created.
type Snapshot struct {
	GameMode   GameMode                    `json:"gameMode"`
	Teams      teamModel.Roster            `json:"teams"`
	League     *leagueModel.League         `json:"league,omitempty"`
	Tournament *tournamentModel.Tournament `json:"tournament,omitempty"`
}

// Initial is the state of a fresh installation.
func Initial() Snapshot {
	return Snapshot{
		GameMode: ModeDashboard,
		Teams:    teamModel.InitialRoster(),
	}
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		GameMode:   s.GameMode,
		Teams:      s.Teams.Clone(),
		League:     s.League.Clone(),
		Tournament: s.Tournament.Clone(),
	}
}

// LeaguePhase reports the league lifecycle state.
func (s Snapshot) LeaguePhase() matchModel.Phase {
	return leagueModel.PhaseOf(s.League)
}

// TournamentPhase reports the tournament lifecycle state.
func (s Snapshot) TournamentPhase() matchModel.Phase {
	return tournamentModel.PhaseOf(s.Tournament)
}
