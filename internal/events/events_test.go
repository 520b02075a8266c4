package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/task-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *TaskEvent
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestNewTaskEvent(t *testing.T) {
	task, err := domain.NewTask("Buy milk")
	require.NoError(t, err)
	task.Toggle()

	before := time.Now().UTC()
	event := NewTaskEvent(TaskToggled, task)

	assert.NotEqual(t, task.ID, event.ID, "event id is independent of the task id")
	assert.Equal(t, TaskToggled, event.Type)
	assert.Equal(t, task.ID, event.TaskID)
	assert.Equal(t, "Buy milk", event.Description)
	assert.True(t, event.IsCompleted)
	assert.False(t, event.OccurredAt.Before(before))
}

func TestEventHandlerFunc(t *testing.T) {
	task, err := domain.NewTask("x")
	require.NoError(t, err)
	event := NewTaskEvent(TaskCreated, task)

	var got *TaskEvent
	h := EventHandlerFunc(func(ctx context.Context, e *TaskEvent) error {
		got = e
		return errors.New("boom")
	})

	err = h.HandleEvent(context.Background(), event)
	assert.EqualError(t, err, "boom")
	assert.Same(t, event, got)
}
