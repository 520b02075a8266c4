package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/task-manager-api/internal/domain"
	"github.com/phrazzld/task-manager-api/internal/platform/logger"
	"github.com/phrazzld/task-manager-api/internal/store"
)

// Compile-time check to ensure TaskStore implements store.TaskStore
var _ store.TaskStore = (*TaskStore)(nil)

// TaskStore is a concurrency-safe, map-backed implementation of store.TaskStore.
// A single RWMutex guards the map: reads share the lock, mutations take it
// exclusively, so toggles and deletes on the same ID are linearizable.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[uuid.UUID]*domain.Task
	logger *slog.Logger
}

// NewTaskStore creates an empty TaskStore.
// If logger is nil, slog.Default() is used.
func NewTaskStore(l *slog.Logger) *TaskStore {
	if l == nil {
		l = slog.Default()
	}
	return &TaskStore{
		tasks:  make(map[uuid.UUID]*domain.Task),
		logger: l.With(slog.String("component", "memory_task_store")),
	}
}

// Create implements store.TaskStore.
func (s *TaskStore) Create(ctx context.Context, description string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(description)
	if err != nil {
		log.Debug("rejected task with invalid description", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "create", "validation failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// uuid.New collisions are practically impossible; regenerate rather than overwrite.
	for {
		if _, exists := s.tasks[task.ID]; !exists {
			break
		}
		task.ID = uuid.New()
	}
	s.tasks[task.ID] = task

	log.Debug("task created", slog.String("task_id", task.ID.String()))
	return task.Clone(), nil
}

// List implements store.TaskStore. Tasks are sorted by description, with the
// ID as a tie-breaker so the order is stable between calls.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	s.mu.RLock()
	result := make([]*domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		result = append(result, task.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Description != result[j].Description {
			return result[i].Description < result[j].Description
		}
		return result[i].ID.String() < result[j].ID.String()
	})

	return result, nil
}

// Get implements store.TaskStore.
func (s *TaskStore) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return task.Clone(), nil
}

// Toggle implements store.TaskStore.
func (s *TaskStore) Toggle(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	task.Toggle()

	logger.FromContextOrDefault(ctx, s.logger).Debug("task toggled",
		slog.String("task_id", id.String()),
		slog.Bool("is_completed", task.IsCompleted))
	return task.Clone(), nil
}

// Delete implements store.TaskStore.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)

	logger.FromContextOrDefault(ctx, s.logger).Debug("task deleted",
		slog.String("task_id", id.String()))
	return nil
}

// Count implements store.TaskStore.
func (s *TaskStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
