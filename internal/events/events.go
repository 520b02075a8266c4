package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/task-manager-api/internal/domain"
)

// EventType identifies what happened to a task.
type EventType string

// Task lifecycle event types.
const (
	TaskCreated EventType = "task.created"
	TaskToggled EventType = "task.toggled"
	TaskDeleted EventType = "task.deleted"
)

// TaskEvent records a change to a single task.
type TaskEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	Type EventType `json:"type"`

	TaskID      uuid.UUID `json:"task_id"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"is_completed"`

	// OccurredAt is the timestamp when the event was created
	OccurredAt time.Time `json:"occurred_at"`
}

// NewTaskEvent creates a TaskEvent of the given type from a task snapshot.
func NewTaskEvent(eventType EventType, task *domain.Task) *TaskEvent {
	return &TaskEvent{
		ID:          uuid.New(),
		Type:        eventType,
		TaskID:      task.ID,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		OccurredAt:  time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *TaskEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *TaskEvent) error
}

// EventHandlerFunc adapts an ordinary function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event *TaskEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *TaskEvent) error {
	return f(ctx, event)
}
