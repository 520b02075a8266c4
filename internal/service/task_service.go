package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/task-manager-api/internal/domain"
	"github.com/phrazzld/task-manager-api/internal/events"
	"github.com/phrazzld/task-manager-api/internal/platform/logger"
	"github.com/phrazzld/task-manager-api/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// CreateTask stores a new incomplete task with the given description
	CreateTask(ctx context.Context, description string) (*domain.Task, error)

	// ListTasks returns all tasks ordered by description
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTask retrieves a single task
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ToggleTask flips a task's completion flag and returns the updated task
	ToggleTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// DeleteTask removes a task
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore    store.TaskStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService.
// The event emitter is optional; a nil emitter disables event publication.
func NewTaskService(
	taskStore store.TaskStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, NewTaskServiceError("init", "task store cannot be nil", nil)
	}
	if logger == nil {
		return nil, NewTaskServiceError("init", "logger cannot be nil", nil)
	}

	return &taskServiceImpl{
		taskStore:    taskStore,
		eventEmitter: eventEmitter,
		logger:       logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService
func (s *taskServiceImpl) CreateTask(ctx context.Context, description string) (*domain.Task, error) {
	task, err := s.taskStore.Create(ctx, description)
	if err != nil {
		return nil, NewTaskServiceError("create", "failed to create task", err)
	}

	s.emit(ctx, events.TaskCreated, task)
	return task, nil
}

// ListTasks implements TaskService
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list", "failed to list tasks", err)
	}
	return tasks, nil
}

// GetTask implements TaskService
func (s *taskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.taskStore.Get(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get", "failed to get task", err)
	}
	return task, nil
}

// ToggleTask implements TaskService
func (s *taskServiceImpl) ToggleTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.taskStore.Toggle(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("toggle", "failed to toggle task", err)
	}

	s.emit(ctx, events.TaskToggled, task)
	return task, nil
}

// DeleteTask implements TaskService
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		return NewTaskServiceError("delete", "failed to delete task", err)
	}

	s.emit(ctx, events.TaskDeleted, &domain.Task{ID: id})
	return nil
}

// emit publishes an event for a completed mutation. Handler failures are
// logged and never reported to the caller: the mutation has already happened.
func (s *taskServiceImpl) emit(ctx context.Context, eventType events.EventType, task *domain.Task) {
	if s.eventEmitter == nil {
		return
	}

	event := events.NewTaskEvent(eventType, task)
	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to emit task event",
			slog.String("error", err.Error()),
			slog.String("event_type", string(eventType)),
			slog.String("task_id", task.ID.String()))
	}
}
