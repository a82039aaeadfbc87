// Package store holds the single in-memory snapshot and serialises every write to it.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/snapshot/model"
)

// DefaultSaveTimeout bounds one subscriber round.
const DefaultSaveTimeout = 10 * time.Second

// Command is one state transition. It receives a private copy of the current snapshot
// and returns the replacement, or an error to leave the state untouched.
type Command func(current model.Snapshot) (model.Snapshot, error)

// Subscriber is notified after committed transitions, in commit order. When writes
// arrive faster than a subscriber finishes, intermediate versions are skipped and the
// subscriber sees the latest one.
type Subscriber func(ctx context.Context, s model.Snapshot) error

// Option configures a Store.
type Option func(*Store)

// WithSaveTimeout sets the deadline given to each subscriber round.
func WithSaveTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.saveTimeout = d
		}
	}
}

// Store is the state container shared by all callers. Writes commit under a lock;
// subscribers run on a single background goroutine so a slow save never blocks readers.
type Store struct {
	mu          sync.Mutex
	current     model.Snapshot
	version     uint64
	notified    uint64
	subscribers []Subscriber
	lastSaved   *time.Time
	lastErr     error
	logger      *zap.SugaredLogger
	now         func() time.Time
	saveTimeout time.Duration

	wake      chan struct{}
	advanced  chan struct{}
	stop      chan struct{}
	stopped   chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

// New creates a store seeded with initial.
func New(initial model.Snapshot, logger *zap.SugaredLogger, opts ...Option) *Store {
	s := &Store{
		current:     initial.Clone(),
		logger:      logger,
		now:         time.Now,
		saveTimeout: DefaultSaveTimeout,
		wake:        make(chan struct{}, 1),
		advanced:    make(chan struct{}),
		stop:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers a subscriber for future transitions and starts the
// notification goroutine on first use.
func (s *Store) Subscribe(sub Subscriber) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, sub)
	s.mu.Unlock()

	s.startOnce.Do(func() { go s.run() })
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Version counts committed transitions since start.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Apply runs cmd against the current state. On success the result replaces the state
// atomically and subscribers are scheduled; a failing subscriber is recorded but does
// not undo the transition.
func (s *Store) Apply(ctx context.Context, cmd Command) (model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := cmd(s.current.Clone())
	if err != nil {
		return model.Snapshot{}, err
	}

	s.current = next
	s.version++
	if len(s.subscribers) == 0 {
		s.markNotified(s.version)
	} else {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}

	return s.current.Clone(), nil
}

// Replace swaps in a whole snapshot, as on import.
func (s *Store) Replace(ctx context.Context, snap model.Snapshot) model.Snapshot {
	out, _ := s.Apply(ctx, func(model.Snapshot) (model.Snapshot, error) {
		return snap.Clone(), nil
	})
	return out
}

// Flush waits until every transition committed before the call has been handed to
// the subscribers.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	target := s.version
	s.mu.Unlock()

	for {
		s.mu.Lock()
		if s.notified >= target {
			s.mu.Unlock()
			return nil
		}
		advanced := s.advanced
		s.mu.Unlock()

		select {
		case <-advanced:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close flushes pending notifications and stops the notification goroutine.
func (s *Store) Close(ctx context.Context) error {
	err := s.Flush(ctx)
	s.stopOnce.Do(func() { close(s.stop) })
	s.startOnce.Do(func() { close(s.stopped) })

	select {
	case <-s.stopped:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}
	return err
}

// Status reports the result of the latest subscriber round.
func (s *Store) Status() model.StorageStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := model.StorageStatus{
		Healthy: s.lastErr == nil,
		Version: s.version,
	}
	if s.lastSaved != nil {
		t := *s.lastSaved
		st.LastSavedAt = &t
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}

func (s *Store) run() {
	defer close(s.stopped)
	for {
		select {
		case <-s.wake:
			s.drain()
		case <-s.stop:
			s.drain()
			return
		}
	}
}

// drain notifies subscribers until they have seen the latest version.
func (s *Store) drain() {
	for {
		s.mu.Lock()
		if s.notified >= s.version {
			s.mu.Unlock()
			return
		}
		version := s.version
		snap := s.current.Clone()
		subs := slices.Clone(s.subscribers)
		s.mu.Unlock()

		failed := s.notify(version, snap, subs)

		s.mu.Lock()
		s.lastErr = failed
		if failed == nil {
			t := s.now()
			s.lastSaved = &t
		}
		s.markNotified(version)
		s.mu.Unlock()
	}
}

func (s *Store) notify(version uint64, snap model.Snapshot, subs []Subscriber) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()

	var failed error
	for _, sub := range subs {
		if err := sub(ctx, snap); err != nil {
			failed = err
			s.logger.Warnw("snapshot subscriber failed", "version", version, "error", err)
		}
	}
	return failed
}

// markNotified must be called with mu held.
func (s *Store) markNotified(version uint64) {
	s.notified = version
	close(s.advanced)
	s.advanced = make(chan struct{})
}
