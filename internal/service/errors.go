// Package service provides application-level services for managing tasks.
package service

import "fmt"

// Error handling principles:
// 1. Expected conditions (not found, invalid input) surface as the store's sentinel errors
// 2. Every error is wrapped in a TaskServiceError carrying the operation name
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps these errors to HTTP status codes

// TaskServiceError is a custom error type for task service errors.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
