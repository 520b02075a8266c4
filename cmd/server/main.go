// Package main implements the entry point for the task manager API server,
// which keeps a shared in-memory task list for a browser client.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/task-manager-api/internal/config"
	"github.com/phrazzld/task-manager-api/internal/platform/logger"
)

// main is the entry point for the task manager API server.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Task manager API server failed: %v", err)
	}
}

// run loads configuration, wires the application and serves until SIGINT
// or SIGTERM arrives.
func run() error {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"shutdown_timeout", cfg.Server.ShutdownTimeout.String(),
		"allowed_origins", cfg.CORS.AllowedOrigins,
		"seed_sample_tasks", cfg.Store.SeedSampleTasks)

	return cfg, appLogger, nil
}
