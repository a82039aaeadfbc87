package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamName indicates that the provided team name is invalid (e.g., empty).
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrEmptyQuery indicates that a search query was empty.
	ErrEmptyQuery = errors.New("search query cannot be empty")
)
