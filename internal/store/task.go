package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/task-manager-api/internal/domain"
)

// TaskStore defines the interface for task data access operations.
// Implementations must be safe for concurrent use and must return copies,
// never references to their internal records.
type TaskStore interface {
	// Create validates the description, assigns a fresh ID and stores a new
	// incomplete task. Returns ErrInvalidEntity if the description is blank.
	Create(ctx context.Context, description string) (*domain.Task, error)

	// List returns all tasks ordered by description ascending.
	// The result is never nil.
	List(ctx context.Context) ([]*domain.Task, error)

	// Get retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Toggle atomically flips the completion flag of a task and returns the
	// updated task. Returns ErrTaskNotFound if the task does not exist.
	Toggle(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Delete removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of stored tasks.
	Count(ctx context.Context) int
}
