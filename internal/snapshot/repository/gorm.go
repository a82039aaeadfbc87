package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/scoreboard/internal/database/database"
	"github.com/festy23/scoreboard/internal/snapshot/model"
)

type repository struct {
	db     *gorm.DB
	key    string
	logger *zap.SugaredLogger
}

// New creates a snapshot repository backed by a SQL database.
func New(db *gorm.DB, key string, logger *zap.SugaredLogger) Repository {
	if key == "" {
		key = DefaultKey
	}
	return &repository{db: db, key: key, logger: logger}
}

// Load returns the stored snapshot.
func (r *repository) Load(ctx context.Context) (*model.Snapshot, error) {
	var rec model.Record
	err := r.db.WithContext(ctx).
		Where("snapshot_key = ?", r.key).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSnapshotNotFound
		}
		return nil, err
	}

	r.logger.Debugw("snapshot loaded", "key", r.key, "updated_at", rec.UpdatedAt)
	return Decode([]byte(rec.Payload))
}

// Save upserts the snapshot row.
func (r *repository) Save(ctx context.Context, s *model.Snapshot) error {
	payload, err := Encode(s)
	if err != nil {
		return err
	}

	rec := &model.Record{SnapshotKey: r.key, Payload: payload}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "snapshot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(rec).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Ping checks the database connection.
func (r *repository) Ping(ctx context.Context) error {
	return database.Ping(ctx, r.db)
}
