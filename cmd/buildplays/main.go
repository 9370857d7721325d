package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mirrormatch/playprep/internal/app"
	"github.com/mirrormatch/playprep/internal/config"
	"github.com/mirrormatch/playprep/internal/observability"
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

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("start profiler", "error", err)
		os.Exit(1)
	}
	defer stopProfiler()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunBuild(ctx, cfg, logger); err != nil {
		logger.Error("pipeline failed", "error", err)
		stopProfiler()
		logger.Sync()
		os.Exit(1)
	}
}
