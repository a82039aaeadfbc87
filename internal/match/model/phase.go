package model

// Phase is the lifecycle state of a league or tournament.
type Phase string

const (
	// PhaseNotStarted means no competition exists yet.
	PhaseNotStarted Phase = "not_started"
	// PhaseInProgress means the competition accepts results.
	PhaseInProgress Phase = "in_progress"
	// PhaseCompleted means the competition has finished.
	PhaseCompleted Phase = "completed"
)
