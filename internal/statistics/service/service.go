// Package service provides the final scores read model.
package service

import (
	"context"

	"go.uber.org/zap"

	leagueEngine "github.com/festy23/scoreboard/internal/league/engine"
	"github.com/festy23/scoreboard/internal/snapshot/store"
	"github.com/festy23/scoreboard/internal/standings"
	"github.com/festy23/scoreboard/internal/statistics/model"
	teamService "github.com/festy23/scoreboard/internal/team/service"
	tournamentService "github.com/festy23/scoreboard/internal/tournament/service"
)

// Service defines the interface for statistics operations.
type Service interface {
	// FinalScores returns the combined view. An empty formula selects the configured one.
	FinalScores(ctx context.Context, formula string) (*model.FinalScoresResponse, error)
}

type service struct {
	store   *store.Store
	formula standings.Formula
	logger  *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(st *store.Store, formula standings.Formula, logger *zap.SugaredLogger) Service {
	return &service{
		store:   st,
		formula: formula,
		logger:  logger,
	}
}

// FinalScores returns the combined view.
func (s *service) FinalScores(_ context.Context, formula string) (*model.FinalScoresResponse, error) {
	f := s.formula
	if formula != "" {
		var err error
		if f, err = standings.FormulaByName(formula); err != nil {
			return nil, err
		}
	}

	snap := s.store.Snapshot()
	resp := &model.FinalScoresResponse{
		Formula:   f.Name,
		Dashboard: teamService.RankByPoints(snap.Teams),
	}

	if l := snap.League; l != nil {
		resp.League = &model.LeagueSummary{
			ID:        l.ID,
			Name:      l.Name,
			Phase:     snap.LeaguePhase(),
			Standings: leagueEngine.Standings(l, snap.Teams, f),
		}
	}

	if t := snap.Tournament; t != nil {
		view := tournamentService.BuildResponse(snap)
		resp.Tournament = &model.TournamentSummary{
			ID:      t.ID,
			Name:    t.Name,
			Phase:   view.Phase,
			Results: view.Results,
		}
	}

	s.logger.Debugw("final scores built", "formula", f.Name,
		"league", resp.League != nil, "tournament", resp.Tournament != nil)
	return resp, nil
}
