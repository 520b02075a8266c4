package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-manager-api/internal/config"
	"github.com/phrazzld/task-manager-api/internal/events"
	"github.com/phrazzld/task-manager-api/internal/platform/memory"
	"github.com/phrazzld/task-manager-api/internal/service"
	"github.com/phrazzld/task-manager-api/internal/store"
)

// sampleTask is a task inserted at startup when seeding is enabled.
type sampleTask struct {
	description string
	completed   bool
}

// sampleTasks gives a fresh server something to show.
var sampleTasks = []sampleTask{
	{description: "Build backend API", completed: true},
	{description: "Build React frontend"},
}

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore    store.TaskStore
	eventEmitter *events.InMemoryEventEmitter
	taskService  service.TaskService
}

// newApplication creates a new application instance with all dependencies
// initialized. The task store is created here once and injected everywhere
// it is needed.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.taskStore = memory.NewTaskStore(logger)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewActivityLogHandler(logger))

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	if cfg.Store.SeedSampleTasks {
		if err := app.seedSampleTasks(ctx); err != nil {
			return nil, fmt.Errorf("failed to seed sample tasks: %w", err)
		}
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// seedSampleTasks writes sampleTasks straight to the store, so no activity
// events are emitted for them.
func (app *application) seedSampleTasks(ctx context.Context) error {
	for _, s := range sampleTasks {
		task, err := app.taskStore.Create(ctx, s.description)
		if err != nil {
			return fmt.Errorf("create %q: %w", s.description, err)
		}
		if s.completed {
			if _, err := app.taskStore.Toggle(ctx, task.ID); err != nil {
				return fmt.Errorf("complete %q: %w", s.description, err)
			}
		}
	}

	app.logger.Info("Sample tasks seeded", "count", len(sampleTasks))
	return nil
}

// Run starts the HTTP server and blocks until ctx is cancelled and the
// server has shut down, or the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
