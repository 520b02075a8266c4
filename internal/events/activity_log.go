package events

import (
	"context"
	"log/slog"
)

// ActivityLogHandler writes every task event to the log at info level,
// giving operators an audit trail of changes.
type ActivityLogHandler struct {
	logger *slog.Logger
}

// NewActivityLogHandler creates an ActivityLogHandler.
func NewActivityLogHandler(logger *slog.Logger) *ActivityLogHandler {
	return &ActivityLogHandler{
		logger: logger.With("component", "task_activity"),
	}
}

// HandleEvent implements EventHandler.
func (h *ActivityLogHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	h.logger.InfoContext(ctx, "task activity",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
		slog.String("task_id", event.TaskID.String()),
		slog.Bool("is_completed", event.IsCompleted),
		slog.Time("occurred_at", event.OccurredAt))
	return nil
}
