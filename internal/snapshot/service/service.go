// Package service exposes whole-snapshot operations: mode switching, export, import,
// reset-all and persistence wiring.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	matchModel "github.com/festy23/scoreboard/internal/match/model"
	"github.com/festy23/scoreboard/internal/snapshot/model"
	"github.com/festy23/scoreboard/internal/snapshot/repository"
	"github.com/festy23/scoreboard/internal/snapshot/store"
	"github.com/festy23/scoreboard/pkg/retry"
)

// ExportPrefix starts every exported file name.
const ExportPrefix = "scoreboard-data"

// Service defines the interface for snapshot operations.
type Service interface {
	// Get returns the whole current snapshot.
	Get(ctx context.Context) model.Snapshot

	// SetMode switches the active screen.
	SetMode(ctx context.Context, mode string) (model.Snapshot, error)

	// Export returns the snapshot as pretty-printed JSON and a dated file name.
	Export(ctx context.Context) ([]byte, string, error)

	// Import replaces the snapshot with one decoded from data.
	// A malformed document leaves the current state untouched.
	Import(ctx context.Context, data []byte) (model.Snapshot, error)

	// ResetAll restores the initial state.
	ResetAll(ctx context.Context, confirmed bool) (model.Snapshot, error)

	// StorageStatus reports the latest persistence outcome.
	StorageStatus(ctx context.Context) model.StorageStatus
}

type service struct {
	store  *store.Store
	driver string
	logger *zap.SugaredLogger
	now    func() time.Time
}

// New creates a new snapshot service instance. driver names the configured storage backend.
func New(st *store.Store, driver string, logger *zap.SugaredLogger) Service {
	return &service{
		store:  st,
		driver: driver,
		logger: logger,
		now:    time.Now,
	}
}

// Get returns the whole snapshot.
func (s *service) Get(_ context.Context) model.Snapshot {
	return s.store.Snapshot()
}

// SetMode switches the active screen.
func (s *service) SetMode(ctx context.Context, mode string) (model.Snapshot, error) {
	m, err := model.ParseGameMode(mode)
	if err != nil {
		return model.Snapshot{}, err
	}

	snap, err := s.store.Apply(ctx, func(cur model.Snapshot) (model.Snapshot, error) {
		cur.GameMode = m
		return cur, nil
	})
	if err != nil {
		return model.Snapshot{}, err
	}

	s.logger.Debugw("game mode changed", "mode", m)
	return snap, nil
}

// Export renders the snapshot for download.
func (s *service) Export(_ context.Context) ([]byte, string, error) {
	data, err := MarshalPretty(s.store.Snapshot())
	if err != nil {
		return nil, "", err
	}
	return data, ExportFileName(s.now()), nil
}

// Import replaces the snapshot.
func (s *service) Import(ctx context.Context, data []byte) (model.Snapshot, error) {
	decoded, err := repository.Decode(data)
	if err != nil {
		s.logger.Warnw("snapshot import rejected", "error", err)
		return model.Snapshot{}, err
	}
	if err := normalize(decoded); err != nil {
		s.logger.Warnw("snapshot import rejected", "error", err)
		return model.Snapshot{}, err
	}

	snap := s.store.Replace(ctx, *decoded)
	s.logger.Infow("snapshot imported", "mode", snap.GameMode, "teams", len(snap.Teams))
	return snap, nil
}

// ResetAll restores the initial state.
func (s *service) ResetAll(ctx context.Context, confirmed bool) (model.Snapshot, error) {
	snap, err := s.store.Apply(ctx, func(cur model.Snapshot) (model.Snapshot, error) {
		if !confirmed {
			return cur, matchModel.ErrNotConfirmed
		}
		return model.Initial(), nil
	})
	if err != nil {
		return model.Snapshot{}, err
	}

	s.logger.Infow("scoreboard reset to initial state")
	return snap, nil
}

// StorageStatus reports persistence health.
func (s *service) StorageStatus(_ context.Context) model.StorageStatus {
	st := s.store.Status()
	st.Driver = s.driver
	return st
}

// normalize fills defaults of an imported document and rejects shapes the engines
// cannot work with.
func normalize(s *model.Snapshot) error {
	if len(s.Teams) == 0 {
		return fmt.Errorf("%w: teams are missing", model.ErrInvalidFormat)
	}
	if s.GameMode == "" {
		s.GameMode = model.ModeDashboard
		return nil
	}
	if _, err := model.ParseGameMode(string(s.GameMode)); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidFormat, err)
	}
	return nil
}

// MarshalPretty encodes a snapshot the way exports and backups store it.
func MarshalPretty(s model.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// ExportFileName names an export taken at t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("%s-%s.json", ExportPrefix, t.Format(time.DateOnly))
}

// Load reads the persisted snapshot, falling back to the initial state when nothing is
// stored or the stored document cannot be read.
func Load(ctx context.Context, repo repository.Repository, logger *zap.SugaredLogger) model.Snapshot {
	snap, err := repo.Load(ctx)
	switch {
	case err == nil:
		if nerr := normalize(snap); nerr != nil {
			logger.Warnw("stored snapshot is invalid, starting fresh", "error", nerr)
			return model.Initial()
		}
		logger.Infow("snapshot loaded", "mode", snap.GameMode, "teams", len(snap.Teams))
		return *snap
	case errors.Is(err, model.ErrSnapshotNotFound):
		logger.Infow("no stored snapshot, starting fresh")
	default:
		logger.Warnw("failed to load snapshot, starting fresh", "error", err)
	}
	return model.Initial()
}

// Persister returns a store subscriber that saves every committed snapshot to repo.
func Persister(repo repository.Repository, logger *zap.SugaredLogger) store.Subscriber {
	return func(ctx context.Context, snap model.Snapshot) error {
		policy := retry.SnapshotSave()
		policy.OnRetry = func(attempt int, err error, wait time.Duration) {
			logger.Warnw("snapshot save failed, retrying",
				"attempt", attempt, "wait", wait, "error", err)
		}
		err := retry.Do(ctx, policy, func(ctx context.Context) error {
			return repo.Save(ctx, &snap)
		})
		if err != nil {
			logger.Errorw("failed to persist snapshot", "error", err)
			return fmt.Errorf("%w: %v", model.ErrStorage, err)
		}
		return nil
	}
}
