package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/tlsnotary/notary-launcher/internal/adapters/process"
	"github.com/tlsnotary/notary-launcher/internal/app"
	"github.com/tlsnotary/notary-launcher/internal/config"
)

func main() {
	// Load configuration first to determine logging mode
	cfg := config.MustLoad()

	// Configure logging based on mode. Diagnostics go to stderr so the
	// launcher's stdout carries only the status lines.
	var logger *slog.Logger
	if cfg.Application.Mode().IsDevelopment() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	slog.SetDefault(logger)

	ctx := config.WithConfig(context.Background(), cfg)
	launcher := app.NewLauncherService(ctx, process.New())

	// Run returns only if the notary server could not be started.
	if err := launcher.Run(os.Environ()); err != nil {
		logger.Error("failed to launch notary server", "error", err)
		os.Exit(1)
	}
}
