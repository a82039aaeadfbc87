// Package backup periodically exports the snapshot to a sink.
package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	appConfig "github.com/festy23/scoreboard/internal/config"
	"github.com/festy23/scoreboard/internal/snapshot/service"
	"github.com/festy23/scoreboard/internal/snapshot/store"
)

const defaultPrefix = "scoreboard"

// Worker exports the current snapshot on a fixed interval.
type Worker struct {
	scheduler gocron.Scheduler
	store     *store.Store
	sink      Sink
	prefix    string
	interval  time.Duration
	logger    *zap.SugaredLogger
	now       func() time.Time
}

// New creates a worker. Call Start to schedule it.
func New(st *store.Store, sink Sink, cfg appConfig.BackupConfig, logger *zap.SugaredLogger) (*Worker, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create backup scheduler: %w", err)
	}

	return &Worker{
		scheduler: scheduler,
		store:     st,
		sink:      sink,
		prefix:    cfg.Prefix,
		interval:  cfg.Interval,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// NewSink picks the sink configured by cfg.
func NewSink(ctx context.Context, cfg appConfig.BackupConfig) (Sink, error) {
	if cfg.UseS3() {
		return NewS3Sink(ctx, cfg.S3)
	}
	return NewDirSink(cfg.Dir), nil
}

// Start schedules the backup job and starts the scheduler.
func (w *Worker) Start() error {
	_, err := w.scheduler.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), w.interval)
			defer cancel()
			if _, err := w.RunOnce(ctx); err != nil {
				w.logger.Errorw("snapshot backup failed", "error", err)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule backup job: %w", err)
	}

	w.scheduler.Start()
	w.logger.Infow("snapshot backups scheduled", "interval", w.interval.String(), "prefix", w.prefix)
	return nil
}

// RunOnce exports the current snapshot and returns the key it was stored under.
func (w *Worker) RunOnce(ctx context.Context) (string, error) {
	data, err := service.MarshalPretty(w.store.Snapshot())
	if err != nil {
		return "", err
	}

	key := Key(w.prefix, w.now())
	if err := w.sink.Put(ctx, key, data); err != nil {
		return "", err
	}

	w.logger.Infow("snapshot backup written", "key", key, "bytes", len(data))
	return key, nil
}

// Shutdown stops the scheduler and waits for a running job.
func (w *Worker) Shutdown() error {
	return w.scheduler.Shutdown()
}

// Key names a backup taken at t.
func Key(prefix string, t time.Time) string {
	dir := slug.Make(prefix)
	if dir == "" {
		dir = defaultPrefix
	}
	return fmt.Sprintf("%s/%s-%s.json", dir, service.ExportPrefix, t.UTC().Format("2006-01-02-150405"))
}
