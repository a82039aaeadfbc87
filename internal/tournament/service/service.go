// Package service runs tournament engine transitions against the shared snapshot.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	matchModel "github.com/festy23/scoreboard/internal/match/model"
	snapshotModel "github.com/festy23/scoreboard/internal/snapshot/model"
	"github.com/festy23/scoreboard/internal/snapshot/store"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
	"github.com/festy23/scoreboard/internal/tournament/engine"
	tournamentModel "github.com/festy23/scoreboard/internal/tournament/model"
)

// Service defines the interface for tournament operations.
type Service interface {
	// Get returns the active tournament, its current game and placings.
	Get(ctx context.Context) (*tournamentModel.TournamentResponse, error)

	// Create starts a bracket from four roster teams, replacing any previous tournament.
	Create(ctx context.Context, name string, teamIDs []string) (*tournamentModel.TournamentResponse, error)

	// RecordResult sets the winner of semi1, semi2 or final.
	RecordResult(ctx context.Context, gameID, outcome string) (*tournamentModel.TournamentResponse, error)

	// Reset clears every result and the final's slots.
	Reset(ctx context.Context, confirmed bool) (*tournamentModel.TournamentResponse, error)
}

type service struct {
	store  *store.Store
	logger *zap.SugaredLogger
	newID  func() string
}

// New creates a new tournament service instance.
func New(st *store.Store, logger *zap.SugaredLogger) Service {
	return &service{
		store:  st,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Get returns the active tournament.
func (s *service) Get(_ context.Context) (*tournamentModel.TournamentResponse, error) {
	snap := s.store.Snapshot()
	if snap.Tournament == nil {
		return nil, tournamentModel.ErrTournamentNotStarted
	}
	return BuildResponse(snap), nil
}

// Create starts a tournament.
func (s *service) Create(ctx context.Context, name string, teamIDs []string) (*tournamentModel.TournamentResponse, error) {
	snap, err := s.store.Apply(ctx, func(cur snapshotModel.Snapshot) (snapshotModel.Snapshot, error) {
		t, err := engine.Create(s.newID(), name, cur.Teams, teamIDs)
		if err != nil {
			return cur, err
		}
		cur.Tournament = t
		return cur, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("tournament created",
		"tournament_id", snap.Tournament.ID,
		"name", snap.Tournament.Name,
		"teams", snap.Tournament.Teams.IDs(),
	)
	return BuildResponse(snap), nil
}

// RecordResult sets the winner of one bracket game.
func (s *service) RecordResult(ctx context.Context, gameID, outcome string) (*tournamentModel.TournamentResponse, error) {
	o, err := matchModel.ParseOutcome(outcome)
	if err != nil {
		return nil, err
	}

	snap, err := s.store.Apply(ctx, func(cur snapshotModel.Snapshot) (snapshotModel.Snapshot, error) {
		t, deltas, err := engine.RecordResult(cur.Tournament, gameID, o)
		if err != nil {
			return cur, err
		}
		cur.Tournament = t
		cur.Teams = cur.Teams.ApplyDeltas(deltas)
		return cur, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("tournament result recorded",
		"game_id", gameID,
		"outcome", o,
		"current_game_index", snap.Tournament.CurrentGameIndex,
		"completed", snap.Tournament.Completed,
	)
	return BuildResponse(snap), nil
}

// Reset clears the tournament.
func (s *service) Reset(ctx context.Context, confirmed bool) (*tournamentModel.TournamentResponse, error) {
	snap, err := s.store.Apply(ctx, func(cur snapshotModel.Snapshot) (snapshotModel.Snapshot, error) {
		t, deltas, err := engine.Reset(cur.Tournament, confirmed)
		if err != nil {
			return cur, err
		}
		cur.Tournament = t
		cur.Teams = cur.Teams.ApplyDeltas(deltas)
		return cur, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("tournament reset", "tournament_id", snap.Tournament.ID)
	return BuildResponse(snap), nil
}

// BuildResponse assembles the tournament view. Placings carry current roster names.
func BuildResponse(snap snapshotModel.Snapshot) *tournamentModel.TournamentResponse {
	return &tournamentModel.TournamentResponse{
		Phase:       snap.TournamentPhase(),
		Tournament:  snap.Tournament,
		CurrentGame: engine.CurrentGame(snap.Tournament),
		Results:     withRosterNames(engine.Results(snap.Tournament), snap.Teams),
	}
}

func withRosterNames(res *tournamentModel.Results, roster teamModel.Roster) *tournamentModel.Results {
	if res == nil {
		return nil
	}
	rename := func(t *teamModel.Team) {
		if t == nil {
			return
		}
		if current, ok := roster.Get(t.ID); ok {
			t.Name = current.Name
		}
	}
	rename(res.Champion)
	rename(res.RunnerUp)
	for i := range res.SemifinalLosers {
		rename(&res.SemifinalLosers[i])
	}
	return res
}
