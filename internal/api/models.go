package api

import "github.com/phrazzld/task-manager-api/internal/domain"

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	Description string `json:"description" validate:"required,notblank"`
}

// TaskResponse is the JSON shape of a task shared with the browser client.
type TaskResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Description: task.Description,
		IsCompleted: task.IsCompleted,
	}
}

// tasksToResponse converts a slice of tasks, never returning nil so that an
// empty list encodes as [] rather than null.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
