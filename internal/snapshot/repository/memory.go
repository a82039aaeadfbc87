package repository

import (
	"context"
	"sync"

	"github.com/festy23/scoreboard/internal/snapshot/model"
)

type memoryRepository struct {
	mu      sync.Mutex
	payload string
}

// NewMemory creates a repository that keeps the encoded snapshot in process memory.
func NewMemory() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Load(_ context.Context) (*model.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.payload == "" {
		return nil, model.ErrSnapshotNotFound
	}
	return Decode([]byte(r.payload))
}

func (r *memoryRepository) Save(_ context.Context, s *model.Snapshot) error {
	payload, err := Encode(s)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payload = payload
	return nil
}

func (r *memoryRepository) Ping(context.Context) error {
	return nil
}
