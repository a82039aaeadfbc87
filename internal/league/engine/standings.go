package engine

import (
	leagueModel "github.com/festy23/scoreboard/internal/league/model"
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	"github.com/festy23/scoreboard/internal/standings"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

// RecomputeStandings rebuilds every team's record from scratch using all completed games.
// Games referencing teams outside the league are skipped.
func RecomputeStandings(teams teamModel.Roster, rounds []leagueModel.Round) teamModel.Roster {
	records := make(map[string]*standings.Record, len(teams))
	for _, t := range teams {
		records[t.ID] = &standings.Record{}
	}

	for _, r := range rounds {
		for _, g := range r.Games {
			if !g.Completed || g.Result == nil {
				continue
			}
			home, away := records[g.Team1ID], records[g.Team2ID]
			if home == nil || away == nil {
				continue
			}
			switch *g.Result {
			case matchModel.OutcomeTeam1:
				home.Wins++
				away.Losses++
			case matchModel.OutcomeTeam2:
				away.Wins++
				home.Losses++
			case matchModel.OutcomeDraw:
				home.Draws++
				away.Draws++
			}
		}
	}

	out := teams.Clone()
	for i := range out {
		out[i] = out[i].WithRecord(*records[out[i].ID])
	}
	return out
}

// Standings ranks the league teams under f. Names come from roster when present.
func Standings(l *leagueModel.League, roster teamModel.Roster, f standings.Formula) []leagueModel.StandingRow {
	if l == nil {
		return []leagueModel.StandingRow{}
	}

	ranked := standings.Rank(l.Teams, f, teamModel.Team.Record)
	rows := make([]leagueModel.StandingRow, 0, len(ranked))
	for i, t := range ranked {
		name := t.Name
		if current, ok := roster.Get(t.ID); ok {
			name = current.Name
		}
		rec := t.Record()
		rows = append(rows, leagueModel.StandingRow{
			Position:     i + 1,
			TeamID:       t.ID,
			Name:         name,
			Points:       f.Points(rec),
			Differential: rec.Differential(),
			Record:       rec,
		})
	}
	return rows
}

// RemainingRounds counts the current round and every round after it.
func RemainingRounds(l *leagueModel.League) int {
	if l == nil {
		return 0
	}
	return len(l.Rounds) - l.CurrentRound + 1
}
