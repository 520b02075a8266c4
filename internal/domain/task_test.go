package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Run("valid description", func(t *testing.T) {
		task, err := NewTask("Buy milk")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, "Buy milk", task.Description)
		assert.False(t, task.IsCompleted, "new tasks start incomplete")
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[uuid.UUID]bool)
		for i := 0; i < 100; i++ {
			task, err := NewTask("task")
			require.NoError(t, err)
			assert.False(t, seen[task.ID], "duplicate id generated")
			seen[task.ID] = true
		}
	})

	blanks := []string{"", " ", "\t", "\n  \r\n"}
	for _, desc := range blanks {
		t.Run("blank description "+quote(desc), func(t *testing.T) {
			task, err := NewTask(desc)

			assert.Nil(t, task)
			assert.ErrorIs(t, err, ErrEmptyTaskDescription)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestTask_Validate(t *testing.T) {
	task := &Task{Description: "no id"}
	assert.True(t, errors.Is(task.Validate(), ErrEmptyTaskID))

	task.ID = uuid.New()
	assert.NoError(t, task.Validate())
}

func TestTask_Toggle(t *testing.T) {
	task, err := NewTask("Walk the dog")
	require.NoError(t, err)

	task.Toggle()
	assert.True(t, task.IsCompleted)

	task.Toggle()
	assert.False(t, task.IsCompleted, "toggling twice restores the original value")
}

func TestTask_Clone(t *testing.T) {
	task, err := NewTask("Original")
	require.NoError(t, err)

	c := task.Clone()
	c.Toggle()

	assert.Equal(t, task.ID, c.ID)
	assert.False(t, task.IsCompleted, "mutating the clone must not affect the original")
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("id", "has invalid format", ErrInvalidID)

	assert.Equal(t, "id has invalid format", err.Error())
	assert.ErrorIs(t, err, ErrInvalidID)
}

func quote(s string) string {
	return "[" + s + "]"
}
