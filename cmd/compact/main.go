package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mirrormatch/playprep/internal/app"
	"github.com/mirrormatch/playprep/internal/config"
	"github.com/mirrormatch/playprep/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunCompact(ctx, cfg, logger); err != nil {
		logger.Error("compact pipeline failed", "error", err)
		logger.Sync()
		os.Exit(1)
	}
}
