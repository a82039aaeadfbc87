// Package standings computes ranking points and table ordering from win/draw/loss records.
package standings

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownFormula indicates a formula name other than league or classic.
var ErrUnknownFormula = errors.New("unknown scoring formula")

// Record is a win/draw/loss tally for one team in one scoring context.
type Record struct {
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}

// Differential is the wins minus losses tie-breaker.
func (r Record) Differential() int {
	return r.Wins - r.Losses
}

// Formula converts a record into ranking points.
type Formula struct {
	Name string `json:"name"`
	Win  int    `json:"win"`
	Draw int    `json:"draw"`
	Loss int    `json:"loss"`
}

var (
	// LeagueFormula is the canonical formula. Roster reconciliation always uses it.
	LeagueFormula = Formula{Name: "league", Win: 300, Draw: 50, Loss: 0}
	// ClassicFormula is the three-points-for-a-win table used by the final scores view.
	ClassicFormula = Formula{Name: "classic", Win: 3, Draw: 1, Loss: 0}
)

// Points applies the formula to a record.
func (f Formula) Points(r Record) int {
	return r.Wins*f.Win + r.Draws*f.Draw + r.Losses*f.Loss
}

// FormulaByName resolves a formula by its configuration name.
func FormulaByName(name string) (Formula, error) {
	switch name {
	case LeagueFormula.Name:
		return LeagueFormula, nil
	case ClassicFormula.Name:
		return ClassicFormula, nil
	default:
		return Formula{}, fmt.Errorf("%w: %s", ErrUnknownFormula, name)
	}
}

// LeaguePoints returns the ranking points of a record under LeagueFormula.
func LeaguePoints(r Record) int {
	return LeagueFormula.Points(r)
}

// Compare orders two records for a table: higher points first, then higher differential.
// It returns 0 when the records tie on both.
func (f Formula) Compare(a, b Record) int {
	if c := cmp.Compare(f.Points(b), f.Points(a)); c != 0 {
		return c
	}
	return cmp.Compare(b.Differential(), a.Differential())
}

// Rank returns a new slice ordered by f. Ties keep their input order.
func Rank[T any](items []T, f Formula, record func(T) Record) []T {
	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(a, b T) int {
		return f.Compare(record(a), record(b))
	})
	return ranked
}
