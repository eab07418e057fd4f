package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fplytics/fpl-insights/internal/app"
	"github.com/fplytics/fpl-insights/internal/config"
	"github.com/fplytics/fpl-insights/internal/platform/logging"
)

// Replaces the postgres season snapshot with the exports named by
// PLAYERS_FILE and WEEKLY_FILE. Run migrations first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.ImportSeason(ctx, cfg, logger); err != nil {
		logger.Error("season import failed", "error", err)
		os.Exit(1)
	}

	logger.Info("season import finished")
}
