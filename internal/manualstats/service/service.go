// Package service applies manual record edits to the shared snapshot.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/manualstats/engine"
	manualModel "github.com/festy23/scoreboard/internal/manualstats/model"
	snapshotModel "github.com/festy23/scoreboard/internal/snapshot/model"
	"github.com/festy23/scoreboard/internal/snapshot/store"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

// Service defines the interface for manual stats operations.
type Service interface {
	// Table returns the roster ranked by the league points its records imply.
	Table(ctx context.Context) (*manualModel.StatsResponse, error)

	// Apply replaces records for the listed teams and reconciles their points.
	Apply(ctx context.Context, entries []manualModel.Entry) (*manualModel.StatsResponse, error)

	// ResetAll zeroes every record and removes the points it implied.
	ResetAll(ctx context.Context, confirmed bool) (*manualModel.StatsResponse, error)
}

type service struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

// New creates a new manual stats service instance.
func New(st *store.Store, logger *zap.SugaredLogger) Service {
	return &service{store: st, logger: logger}
}

// Table returns the current stats table.
func (s *service) Table(_ context.Context) (*manualModel.StatsResponse, error) {
	return &manualModel.StatsResponse{Teams: engine.Table(s.store.Snapshot().Teams)}, nil
}

// Apply replaces records.
func (s *service) Apply(ctx context.Context, entries []manualModel.Entry) (*manualModel.StatsResponse, error) {
	return s.reconcile(ctx, "manual stats applied", func(roster teamModel.Roster) (teamModel.Roster, []teamModel.PointDelta, error) {
		return engine.Apply(roster, entries)
	})
}

// ResetAll zeroes every record.
func (s *service) ResetAll(ctx context.Context, confirmed bool) (*manualModel.StatsResponse, error) {
	return s.reconcile(ctx, "manual stats reset", func(roster teamModel.Roster) (teamModel.Roster, []teamModel.PointDelta, error) {
		return engine.ResetAll(roster, confirmed)
	})
}

func (s *service) reconcile(
	ctx context.Context,
	event string,
	op func(teamModel.Roster) (teamModel.Roster, []teamModel.PointDelta, error),
) (*manualModel.StatsResponse, error) {
	var deltas []teamModel.PointDelta
	snap, err := s.store.Apply(ctx, func(cur snapshotModel.Snapshot) (snapshotModel.Snapshot, error) {
		roster, d, err := op(cur.Teams)
		if err != nil {
			return cur, err
		}
		cur.Teams = roster
		deltas = d
		return cur, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow(event, "deltas", deltas)
	return &manualModel.StatsResponse{Teams: engine.Table(snap.Teams), Deltas: deltas}, nil
}
