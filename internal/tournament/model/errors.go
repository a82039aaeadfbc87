package model

import "errors"

var (
	// ErrInvalidTournamentName indicates that the tournament name is empty after trimming.
	ErrInvalidTournamentName = errors.New("tournament name is required")
	// ErrInvalidTeamSelection indicates that the selection is not exactly 4 distinct roster teams.
	ErrInvalidTeamSelection = errors.New("select exactly 4 teams for the tournament")
	// ErrTournamentNotStarted indicates that no tournament has been created.
	ErrTournamentNotStarted = errors.New("tournament not started")
	// ErrGameNotFound indicates a game id outside semi1, semi2, final.
	ErrGameNotFound = errors.New("game not found")
	// ErrDrawNotAllowed indicates a draw was recorded in a knockout game.
	ErrDrawNotAllowed = errors.New("draws are not allowed in tournament games")
	// ErrFinalNotReady indicates the final was recorded before both finalists were known.
	ErrFinalNotReady = errors.New("final teams are not decided yet")
)
