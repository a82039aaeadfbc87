package model

import "time"

// SetModeRequest switches the active screen.
type SetModeRequest struct {
	GameMode string `json:"game_mode" binding:"required"`
}

// ResetRequest carries the operator's confirmation.
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

// StorageStatus describes the outcome of the most recent persistence attempt.
type StorageStatus struct {
	Healthy     bool       `json:"healthy"`
	Driver      string     `json:"driver"`
	LastSavedAt *time.Time `json:"last_saved_at,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	Version     uint64     `json:"version"`
}
