// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/backup"
	appConfig "github.com/festy23/scoreboard/internal/config"
	"github.com/festy23/scoreboard/internal/health"
	leagueRouter "github.com/festy23/scoreboard/internal/league/router"
	manualStatsRouter "github.com/festy23/scoreboard/internal/manualstats/router"
	"github.com/festy23/scoreboard/internal/middleware"
	"github.com/festy23/scoreboard/internal/snapshot/repository"
	snapshotRouter "github.com/festy23/scoreboard/internal/snapshot/router"
	snapshotService "github.com/festy23/scoreboard/internal/snapshot/service"
	"github.com/festy23/scoreboard/internal/snapshot/store"
	"github.com/festy23/scoreboard/internal/standings"
	statisticsRouter "github.com/festy23/scoreboard/internal/statistics/router"
	teamRouter "github.com/festy23/scoreboard/internal/team/router"
	tournamentRouter "github.com/festy23/scoreboard/internal/tournament/router"
	"github.com/festy23/scoreboard/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if err := run(cfg, sugar); err != nil {
		sugar.Fatalw("server stopped with error", "error", err)
	}
}

func run(cfg appConfig.Config, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg.Storage, sugar)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo(); err != nil {
			sugar.Warnw("failed to close storage", "error", err)
		}
	}()

	st := store.New(snapshotService.Load(ctx, repo, sugar), sugar, store.WithSaveTimeout(cfg.Storage.SaveTimeout))
	st.Subscribe(snapshotService.Persister(repo, sugar))
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Storage.SaveTimeout)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			sugar.Warnw("pending snapshot save did not finish", "error", err)
		}
	}()

	formula, err := standings.FormulaByName(cfg.Scoring.FinalFormula)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	r := newRouter(cfg, st, repo, formula, sugar)

	if cfg.Backup.Enabled {
		worker, err := startBackups(ctx, st, cfg.Backup, sugar)
		if err != nil {
			return err
		}
		defer func() {
			if err := worker.Shutdown(); err != nil {
				sugar.Warnw("failed to stop backup scheduler", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("starting server", "addr", srv.Addr, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sugar.Infow("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newRouter builds the engine with middleware and every module's routes.
func newRouter(
	cfg appConfig.Config,
	st *store.Store,
	repo repository.Repository,
	formula standings.Formula,
	sugar *zap.SugaredLogger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(sugar))
	r.Use(middleware.Recovery(sugar))
	if cfg.RateLimit.Enabled() {
		r.Use(middleware.RateLimit(middleware.NewClientLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst), sugar))
	}

	r.GET("/health", health.New(st, repo, cfg.Storage.Driver, sugar).Check)
	teamRouter.RegisterRoutes(r, st, sugar)
	leagueRouter.RegisterRoutes(r, st, sugar)
	tournamentRouter.RegisterRoutes(r, st, sugar)
	manualStatsRouter.RegisterRoutes(r, st, sugar)
	snapshotRouter.RegisterRoutes(r, st, cfg.Storage.Driver, sugar)
	statisticsRouter.RegisterRoutes(r, st, formula, sugar)
	return r
}

func startBackups(ctx context.Context, st *store.Store, cfg appConfig.BackupConfig, sugar *zap.SugaredLogger) (*backup.Worker, error) {
	sink, err := backup.NewSink(ctx, cfg)
	if err != nil {
		return nil, err
	}
	worker, err := backup.New(st, sink, cfg, sugar)
	if err != nil {
		return nil, err
	}
	if err := worker.Start(); err != nil {
		return nil, err
	}
	return worker, nil
}
