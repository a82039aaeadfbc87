package model

import "errors"

var (
	// ErrInvalidLeagueName indicates that the league name is empty after trimming.
	ErrInvalidLeagueName = errors.New("league name is required")
	// ErrLeagueNotStarted indicates that no league has been created.
	ErrLeagueNotStarted = errors.New("league not started")
	// ErrRoundNotFound indicates that the requested round does not exist.
	ErrRoundNotFound = errors.New("round not found")
	// ErrGameNotFound indicates that the requested game does not exist in the round.
	ErrGameNotFound = errors.New("game not found")
	// ErrRoundNotReady indicates that the current round still has unplayed games.
	ErrRoundNotReady = errors.New("current round is not completed")
	// ErrInvalidRoster indicates that the roster cannot seed a league.
	ErrInvalidRoster = errors.New("league requires exactly 8 teams")
)
