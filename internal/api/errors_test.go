package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/task-manager-api/internal/api/shared"
	"github.com/phrazzld/task-manager-api/internal/domain"
	"github.com/phrazzld/task-manager-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "task not found",
			err:            store.ErrTaskNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrapped task not found",
			err:            fmt.Errorf("failed to toggle task: %w", store.ErrTaskNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed id",
			err:            domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "duplicate",
			err:            store.ErrDuplicate,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "invalid entity",
			err:            store.NewStoreError("task", "create", "validation failed", store.ErrInvalidEntity),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank description",
			err:            domain.ErrEmptyTaskDescription,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown error",
			err:            errors.New("disk on fire"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"malformed id", domain.ErrInvalidID, "Task not found"},
		{"generic not found", store.ErrNotFound, "Resource not found"},
		{"duplicate", store.ErrDuplicate, "Resource already exists"},
		{
			"blank description through store",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyTaskDescription),
			"Description is required",
		},
		{"invalid entity", store.ErrInvalidEntity, "Invalid task data"},
		{"internal details are hidden", errors.New("open /etc/secret: denied"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Run("missing description", func(t *testing.T) {
		err := shared.ValidateRequest(&CreateTaskRequest{})
		require.Error(t, err)
		assert.Equal(t, "Invalid description: required field", SanitizeValidationError(err))
	})

	t.Run("blank description", func(t *testing.T) {
		err := shared.ValidateRequest(&CreateTaskRequest{Description: "   "})
		require.Error(t, err)
		assert.Equal(t, "Invalid description: required field", SanitizeValidationError(err))
	})

	t.Run("non-validator error", func(t *testing.T) {
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
	})
}

func TestGetValidationTagMessage(t *testing.T) {
	assert.Equal(t, "required field", getValidationTagMessage("required"))
	assert.Equal(t, "required field", getValidationTagMessage("notblank"))
	assert.Equal(t, "too short", getValidationTagMessage("min"))
	assert.Equal(t, "too long", getValidationTagMessage("max"))
	assert.Equal(t, "invalid value", getValidationTagMessage("oneof"))
	assert.Equal(t, "validation failed", getValidationTagMessage("uuid"))
}
