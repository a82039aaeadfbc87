// Package model provides domain models and DTOs for tournament module.
package model

import (
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

// BracketSize is the number of teams in a knockout tournament.
const BracketSize = 4

// Slot names one of the three fixed bracket games.
type Slot string

const (
	// SlotSemi1 is the first semifinal; its winner takes the final's first slot.
	SlotSemi1 Slot = "semi1"
	// SlotSemi2 is the second semifinal; its winner takes the final's second slot.
	SlotSemi2 Slot = "semi2"
	// SlotFinal decides the champion.
	SlotFinal Slot = "final"
)

// Slots lists the bracket in play order. A slot's position is its game index.
var Slots = [...]Slot{SlotSemi1, SlotSemi2, SlotFinal}

// DoneIndex is the game pointer once the final has been played.
const DoneIndex = len(Slots)

// ParseSlot validates a game id.
func ParseSlot(id string) (Slot, bool) {
	for _, s := range Slots {
		if string(s) == id {
			return s, true
		}
	}
	return "", false
}

// Index returns the slot's position in Slots.
func (s Slot) Index() int {
	for i, slot := range Slots {
		if slot == s {
			return i
		}
	}
	return -1
}

// Title is the display label of the slot.
func (s Slot) Title() string {
	switch s {
	case SlotSemi1:
		return "Semi-Final 1"
	case SlotSemi2:
		return "Semi-Final 2"
	case SlotFinal:
		return "Final"
	default:
		return "Game"
	}
}

// Tournament is a four-team single-elimination bracket.
type Tournament struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Teams            teamModel.Roster  `json:"teams"`
	CurrentGameIndex int               `json:"currentGameIndex"`
	Games            []matchModel.Game `json:"games"`
	Completed        bool              `json:"completed"`
}

// Clone returns a deep copy.
func (t *Tournament) Clone() *Tournament {
	if t == nil {
		return nil
	}
	out := *t
	out.Teams = t.Teams.Clone()
	out.Games = make([]matchModel.Game, len(t.Games))
	for i, g := range t.Games {
		out.Games[i] = g.Clone()
	}
	return &out
}

// Game returns the bracket game for slot.
func (t *Tournament) Game(s Slot) (matchModel.Game, bool) {
	for _, g := range t.Games {
		if g.ID == string(s) {
			return g, true
		}
	}
	return matchModel.Game{}, false
}

// PhaseOf derives the lifecycle state from an optional tournament.
func PhaseOf(t *Tournament) matchModel.Phase {
	switch {
	case t == nil:
		return matchModel.PhaseNotStarted
	case t.Completed:
		return matchModel.PhaseCompleted
	default:
		return matchModel.PhaseInProgress
	}
}
