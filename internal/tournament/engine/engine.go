// Package engine implements the four-team knockout bracket as pure transitions.
package engine

import (
	"strings"

	matchModel "github.com/festy23/scoreboard/internal/match/model"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
	tournamentModel "github.com/festy23/scoreboard/internal/tournament/model"
)

// Create builds a bracket from exactly four distinct roster teams. Teams are seeded in
// roster order: the first two meet in semi1, the last two in semi2.
func Create(id, name string, roster teamModel.Roster, teamIDs []string) (*tournamentModel.Tournament, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, tournamentModel.ErrInvalidTournamentName
	}
	if len(teamIDs) != tournamentModel.BracketSize {
		return nil, tournamentModel.ErrInvalidTeamSelection
	}

	selected := make(map[string]bool, len(teamIDs))
	for _, teamID := range teamIDs {
		selected[teamID] = true
	}
	teams := make(teamModel.Roster, 0, tournamentModel.BracketSize)
	for _, t := range roster {
		if selected[t.ID] {
			teams = append(teams, t)
		}
	}
	if len(teams) != tournamentModel.BracketSize {
		return nil, tournamentModel.ErrInvalidTeamSelection
	}

	return &tournamentModel.Tournament{
		ID:    id,
		Name:  name,
		Teams: teams,
		Games: []matchModel.Game{
			{ID: string(tournamentModel.SlotSemi1), Team1ID: teams[0].ID, Team2ID: teams[1].ID},
			{ID: string(tournamentModel.SlotSemi2), Team1ID: teams[2].ID, Team2ID: teams[3].ID},
			{ID: string(tournamentModel.SlotFinal)},
		},
	}, nil
}

// RecordResult sets the winner of one bracket game and propagates semifinal winners
// into the final. The returned deltas are always empty: tournaments do not score.
func RecordResult(
	t *tournamentModel.Tournament,
	gameID string,
	outcome matchModel.Outcome,
) (*tournamentModel.Tournament, []teamModel.PointDelta, error) {
	if t == nil {
		return nil, nil, tournamentModel.ErrTournamentNotStarted
	}
	slot, ok := tournamentModel.ParseSlot(gameID)
	if !ok {
		return nil, nil, tournamentModel.ErrGameNotFound
	}
	if _, err := matchModel.ParseOutcome(string(outcome)); err != nil {
		return nil, nil, err
	}
	if outcome == matchModel.OutcomeDraw {
		return nil, nil, tournamentModel.ErrDrawNotAllowed
	}

	next := t.Clone()
	idx := indexOf(next, slot)
	if idx < 0 {
		return nil, nil, tournamentModel.ErrGameNotFound
	}
	if slot == tournamentModel.SlotFinal && (next.Games[idx].Team1ID == "" || next.Games[idx].Team2ID == "") {
		return nil, nil, tournamentModel.ErrFinalNotReady
	}

	next.Games[idx] = next.Games[idx].Record(outcome)

	if slot != tournamentModel.SlotFinal {
		if fi := indexOf(next, tournamentModel.SlotFinal); fi >= 0 {
			winner := next.Games[idx].Winner()
			if slot == tournamentModel.SlotSemi1 {
				next.Games[fi].Team1ID = winner
			} else {
				next.Games[fi].Team2ID = winner
			}
		}
	}

	next.CurrentGameIndex = advance(next, slot)
	next.Completed = slot == tournamentModel.SlotFinal

	return next, nil, nil
}

// advance moves the game pointer after slot has been played.
func advance(t *tournamentModel.Tournament, slot tournamentModel.Slot) int {
	played := func(s tournamentModel.Slot) bool {
		g, ok := t.Game(s)
		return ok && g.Completed
	}

	switch {
	case slot == tournamentModel.SlotSemi1 && played(tournamentModel.SlotSemi2):
		return tournamentModel.SlotFinal.Index()
	case slot == tournamentModel.SlotSemi2 && played(tournamentModel.SlotSemi1):
		return tournamentModel.SlotFinal.Index()
	case slot == tournamentModel.SlotFinal:
		return tournamentModel.DoneIndex
	case slot == tournamentModel.SlotSemi1:
		return tournamentModel.SlotSemi2.Index()
	default:
		return t.CurrentGameIndex
	}
}

// Reset clears every result and empties the final's slots.
func Reset(t *tournamentModel.Tournament, confirmed bool) (*tournamentModel.Tournament, []teamModel.PointDelta, error) {
	if !confirmed {
		return nil, nil, matchModel.ErrNotConfirmed
	}
	if t == nil {
		return nil, nil, tournamentModel.ErrTournamentNotStarted
	}

	next := t.Clone()
	for i := range next.Games {
		next.Games[i] = next.Games[i].Clear()
		if next.Games[i].ID == string(tournamentModel.SlotFinal) {
			next.Games[i].Team1ID = ""
			next.Games[i].Team2ID = ""
		}
	}
	next.CurrentGameIndex = 0
	next.Completed = false
	return next, nil, nil
}

// CurrentGame returns the game the pointer refers to, or nil once the bracket is done.
func CurrentGame(t *tournamentModel.Tournament) *tournamentModel.CurrentGame {
	if t == nil || t.CurrentGameIndex < 0 || t.CurrentGameIndex >= len(t.Games) {
		return nil
	}
	g := t.Games[t.CurrentGameIndex]
	title := "Game"
	if slot, ok := tournamentModel.ParseSlot(g.ID); ok {
		title = slot.Title()
	}
	return &tournamentModel.CurrentGame{Title: title, Game: g}
}

// Results derives placings from the recorded games. It returns nil until the final is played.
func Results(t *tournamentModel.Tournament) *tournamentModel.Results {
	if t == nil || !t.Completed {
		return nil
	}
	final, ok := t.Game(tournamentModel.SlotFinal)
	if !ok {
		return nil
	}

	lookup := func(id string) *teamModel.Team {
		if team, found := t.Teams.Get(id); found {
			return &team
		}
		return nil
	}

	res := &tournamentModel.Results{
		Champion:        lookup(final.Winner()),
		RunnerUp:        lookup(final.Loser()),
		SemifinalLosers: []teamModel.Team{},
	}
	for _, s := range []tournamentModel.Slot{tournamentModel.SlotSemi1, tournamentModel.SlotSemi2} {
		semi, found := t.Game(s)
		if !found {
			continue
		}
		if loser := lookup(semi.Loser()); loser != nil {
			res.SemifinalLosers = append(res.SemifinalLosers, *loser)
		}
	}
	return res
}

func indexOf(t *tournamentModel.Tournament, s tournamentModel.Slot) int {
	for i, g := range t.Games {
		if g.ID == string(s) {
			return i
		}
	}
	return -1
}
