// Package model provides domain models and DTOs for team module.
package model

import (
	"fmt"

	"github.com/festy23/scoreboard/internal/standings"
)

// RosterSize is the fixed number of teams on the scoreboard.
const RosterSize = 8

// Team is a roster member. Points is the primary scoreboard number.
type Team struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Draws  int    `json:"draws"`
}

// Record returns the team's win/draw/loss tally.
func (t Team) Record() standings.Record {
	return standings.Record{Wins: t.Wins, Draws: t.Draws, Losses: t.Losses}
}

// WithRecord returns a copy of t carrying r.
func (t Team) WithRecord(r standings.Record) Team {
	t.Wins, t.Draws, t.Losses = r.Wins, r.Draws, r.Losses
	return t
}

// Roster is the canonical ordered list of teams.
type Roster []Team

// InitialRoster returns the default eight teams with zeroed scores.
func InitialRoster() Roster {
	roster := make(Roster, 0, RosterSize)
	for i := 1; i <= RosterSize; i++ {
		roster = append(roster, Team{
			ID:   fmt.Sprintf("team-%d", i),
			Name: fmt.Sprintf("Team %d", i),
		})
	}
	return roster
}

// Clone returns an independent copy.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	copy(out, r)
	return out
}

// Find returns the index of the team with id, or -1.
func (r Roster) Find(id string) int {
	for i := range r {
		if r[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the team with id.
func (r Roster) Get(id string) (Team, bool) {
	i := r.Find(id)
	if i < 0 {
		return Team{}, false
	}
	return r[i], true
}

// IDs returns team ids in roster order.
func (r Roster) IDs() []string {
	ids := make([]string, 0, len(r))
	for _, t := range r {
		ids = append(ids, t.ID)
	}
	return ids
}

// NameOf returns the display name for id, or "Unknown Team".
func (r Roster) NameOf(id string) string {
	if t, ok := r.Get(id); ok {
		return t.Name
	}
	return "Unknown Team"
}

// PointDelta is a signed adjustment to one team's primary points.
type PointDelta struct {
	TeamID string `json:"team_id"`
	Delta  int    `json:"delta"`
}

// ApplyDeltas returns a copy of r with every delta added to the matching team.
// Reconciliation deltas are not clamped. Deltas for unknown teams are ignored.
func (r Roster) ApplyDeltas(deltas []PointDelta) Roster {
	out := r.Clone()
	for _, d := range deltas {
		if i := out.Find(d.TeamID); i >= 0 {
			out[i].Points += d.Delta
		}
	}
	return out
}

// ClampPoints bounds a directly entered point total at zero.
func ClampPoints(points int) int {
	if points < 0 {
		return 0
	}
	return points
}
