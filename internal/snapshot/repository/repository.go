// Package repository provides persistence for the application snapshot.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/festy23/scoreboard/internal/snapshot/model"
	"github.com/festy23/scoreboard/pkg/retry"
)

// DefaultKey identifies the single stored snapshot.
const DefaultKey = "scoreboard-data"

// Repository defines the interface for snapshot storage.
type Repository interface {
	// Load returns the stored snapshot or model.ErrSnapshotNotFound.
	Load(ctx context.Context) (*model.Snapshot, error)

	// Save replaces the stored snapshot.
	Save(ctx context.Context, s *model.Snapshot) error

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}

// Encode serialises a snapshot to the persisted JSON shape.
// Encoding failures are permanent and are not retried.
func Encode(s *model.Snapshot) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", retry.Permanent(fmt.Errorf("failed to encode snapshot: %w", err))
	}
	return string(data), nil
}

// Decode parses a persisted or imported snapshot.
func Decode(data []byte) (*model.Snapshot, error) {
	var s model.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidFormat, err)
	}
	return &s, nil
}
