package model

import "errors"

var (
	// ErrInvalidFormat indicates that an imported snapshot could not be decoded.
	ErrInvalidFormat = errors.New("invalid snapshot format")
	// ErrSnapshotNotFound indicates that no snapshot has been persisted yet.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrStorage indicates that persisting the snapshot failed.
	ErrStorage = errors.New("snapshot storage failed")
	// ErrInvalidGameMode indicates an unknown game mode.
	ErrInvalidGameMode = errors.New("invalid game mode")
)
