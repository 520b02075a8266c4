package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID          = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTaskDescription = fmt.Errorf("%w: task description cannot be empty", ErrValidation)
)

// Task is a single to-do item. The description is fixed at creation;
// only the completion flag changes afterwards.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
}

// NewTask creates a new, not yet completed Task with a fresh random ID.
// Returns an error if the description is empty or whitespace-only.
func NewTask(description string) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		Description: description,
		IsCompleted: false,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if IsBlank(t.Description) {
		return ErrEmptyTaskDescription
	}

	return nil
}

// Toggle flips the completion flag.
func (t *Task) Toggle() {
	t.IsCompleted = !t.IsCompleted
}

// Clone returns an independent copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
