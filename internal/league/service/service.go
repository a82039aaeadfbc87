// Package service runs league engine transitions against the shared snapshot.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/league/engine"
	leagueModel "github.com/festy23/scoreboard/internal/league/model"
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	snapshotModel "github.com/festy23/scoreboard/internal/snapshot/model"
	"github.com/festy23/scoreboard/internal/snapshot/store"
	"github.com/festy23/scoreboard/internal/standings"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

// Service defines the interface for league operations.
type Service interface {
	// Get returns the active league with its standings.
	Get(ctx context.Context) (*leagueModel.LeagueResponse, error)

	// Create starts a league over the current roster, replacing any previous league.
	Create(ctx context.Context, name string) (*leagueModel.LeagueResponse, error)

	// RecordResult sets the outcome of one game and reconciles roster points.
	RecordResult(ctx context.Context, roundID, gameID, outcome string) (*leagueModel.LeagueResponse, error)

	// AdvanceRound moves past the current round once all its games are played.
	AdvanceRound(ctx context.Context) (*leagueModel.LeagueResponse, error)

	// Reset clears every result and removes league points from the roster.
	Reset(ctx context.Context, confirmed bool) (*leagueModel.LeagueResponse, error)
}

type service struct {
	store  *store.Store
	logger *zap.SugaredLogger
	newID  func() string
}

// New creates a new league service instance.
func New(st *store.Store, logger *zap.SugaredLogger) Service {
	return &service{
		store:  st,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Get returns the active league.
func (s *service) Get(_ context.Context) (*leagueModel.LeagueResponse, error) {
	snap := s.store.Snapshot()
	if snap.League == nil {
		return nil, leagueModel.ErrLeagueNotStarted
	}
	return buildResponse(snap, nil), nil
}

// Create starts a league. Points earned in a replaced league are removed from the roster first.
func (s *service) Create(ctx context.Context, name string) (*leagueModel.LeagueResponse, error) {
	var deltas []teamModel.PointDelta
	snap, err := s.store.Apply(ctx, func(cur snapshotModel.Snapshot) (snapshotModel.Snapshot, error) {
		var reversal []teamModel.PointDelta
		if cur.League != nil {
			tr, err := engine.Reset(cur.League, true)
			if err != nil {
				return cur, err
			}
			reversal = tr.Deltas
		}

		// The new league snapshots the roster as it stands without the old league's points.
		teams := cur.Teams.ApplyDeltas(reversal)
		l, err := engine.Create(s.newID(), name, teams)
		if err != nil {
			return cur, err
		}

		cur.Teams = teams
		cur.League = l
		deltas = reversal
		return cur, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("league created",
		"league_id", snap.League.ID,
		"name", snap.League.Name,
		"replaced_deltas", len(deltas),
	)
	return buildResponse(snap, deltas), nil
}

// RecordResult sets one game's outcome.
func (s *service) RecordResult(ctx context.Context, roundID, gameID, outcome string) (*leagueModel.LeagueResponse, error) {
	o, err := matchModel.ParseOutcome(outcome)
	if err != nil {
		return nil, err
	}

	var deltas []teamModel.PointDelta
	snap, err := s.store.Apply(ctx, func(cur snapshotModel.Snapshot) (snapshotModel.Snapshot, error) {
		tr, err := engine.RecordResult(cur.League, roundID, gameID, o)
		if err != nil {
			return cur, err
		}
		cur.League = tr.League
		cur.Teams = cur.Teams.ApplyDeltas(tr.Deltas)
		deltas = tr.Deltas
		return cur, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("league result recorded",
		"round_id", roundID,
		"game_id", gameID,
		"outcome", o,
		"deltas", len(deltas),
	)
	return buildResponse(snap, deltas), nil
}

// AdvanceRound moves to the next round.
func (s *service) AdvanceRound(ctx context.Context) (*leagueModel.LeagueResponse, error) {
	snap, err := s.store.Apply(ctx, func(cur snapshotModel.Snapshot) (snapshotModel.Snapshot, error) {
		l, err := engine.AdvanceRound(cur.League)
		if err != nil {
			return cur, err
		}
		cur.League = l
		return cur, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("league round advanced",
		"current_round", snap.League.CurrentRound,
		"completed", snap.League.Completed,
	)
	return buildResponse(snap, nil), nil
}

// Reset clears the league.
func (s *service) Reset(ctx context.Context, confirmed bool) (*leagueModel.LeagueResponse, error) {
	var deltas []teamModel.PointDelta
	snap, err := s.store.Apply(ctx, func(cur snapshotModel.Snapshot) (snapshotModel.Snapshot, error) {
		tr, err := engine.Reset(cur.League, confirmed)
		if err != nil {
			return cur, err
		}
		cur.League = tr.League
		cur.Teams = cur.Teams.ApplyDeltas(tr.Deltas)
		deltas = tr.Deltas
		return cur, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("league reset", "league_id", snap.League.ID, "reversed", len(deltas))
	return buildResponse(snap, deltas), nil
}

func buildResponse(snap snapshotModel.Snapshot, deltas []teamModel.PointDelta) *leagueModel.LeagueResponse {
	return &leagueModel.LeagueResponse{
		Phase:           snap.LeaguePhase(),
		League:          snap.League,
		Standings:       engine.Standings(snap.League, snap.Teams, standings.LeagueFormula),
		RemainingRounds: engine.RemainingRounds(snap.League),
		Deltas:          deltas,
	}
}
