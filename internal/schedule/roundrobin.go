// Package schedule generates the fixed league schedule for an 8-team roster.
package schedule

import (
	"fmt"

	leagueModel "github.com/festy23/scoreboard/internal/league/model"
	matchModel "github.com/festy23/scoreboard/internal/match/model"
)

const teamCount = 8

// RoundRobin builds TotalRounds rounds of up to GamesPerRound games from the roster order.
// Slot g of round r pairs indices (r-1+2g) mod 8 and (r-1+2g+1) mod 8. A slot that would pair
// a team with itself is dropped, leaving the round short. The output is deterministic.
func RoundRobin(teamIDs []string) ([]leagueModel.Round, error) {
	if len(teamIDs) != teamCount {
		return nil, fmt.Errorf("%w: got %d", leagueModel.ErrInvalidRoster, len(teamIDs))
	}

	rounds := make([]leagueModel.Round, 0, leagueModel.TotalRounds)
	for r := 1; r <= leagueModel.TotalRounds; r++ {
		games := make([]matchModel.Game, 0, leagueModel.GamesPerRound)
		for g := 0; g < leagueModel.GamesPerRound; g++ {
			i := (r - 1 + 2*g) % teamCount
			j := (r - 1 + 2*g + 1) % teamCount
			if i == j {
				continue
			}
			games = append(games, matchModel.Game{
				ID:      fmt.Sprintf("round-%d-game-%d", r, g+1),
				Team1ID: teamIDs[i],
				Team2ID: teamIDs[j],
			})
		}
		rounds = append(rounds, leagueModel.Round{
			ID:          fmt.Sprintf("round-%d", r),
			RoundNumber: r,
			Games:       games,
		})
	}
	return rounds, nil
}
