package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brinepool/gatherbot/internal/activity"
	"github.com/brinepool/gatherbot/internal/concurrency"
	"github.com/brinepool/gatherbot/internal/config"
	"github.com/brinepool/gatherbot/internal/economy"
	"github.com/brinepool/gatherbot/internal/gameconfig"
	"github.com/brinepool/gatherbot/internal/leaderboard"
	"github.com/brinepool/gatherbot/internal/logger"
	"github.com/brinepool/gatherbot/internal/server"
	"github.com/brinepool/gatherbot/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "gatherbot-api",
		Environment: cfg.Environment,
	})

	st, cleanup, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to open user store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	tables, err := gameconfig.Load(cfg.ConfigDir)
	if err != nil {
		slog.Error("Failed to load game tables", "dir", cfg.ConfigDir, "error", err)
		os.Exit(1)
	}

	locks := concurrency.NewKeyedLocks()
	activitySvc := activity.NewService(st, locks, tables)
	economySvc := economy.NewService(st, locks, tables)
	leaderboardSvc := leaderboard.NewService(st)

	srv := server.NewServer(cfg.Port, cfg.APIKey, activitySvc, economySvc, leaderboardSvc, tables)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-sc:
		slog.Info("Shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("Shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}

// openStore builds the configured persistence backend. The returned cleanup
// is a no-op for the file backend.
func openStore(cfg *config.Config) (store.Store, func(), error) {
	if cfg.StoreBackend == config.BackendPostgres {
		pg, err := store.NewPGStore(context.Background(), cfg.GetDBConnString())
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	}

	fs, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return fs, func() {}, nil
}
