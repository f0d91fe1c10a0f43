package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"diff-search/internal/app"
	"diff-search/internal/config"
	"diff-search/internal/observability"
)

func main() {

	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	srv := app.NewServer(cfg, logger)

	if err := srv.Start(ctx); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
