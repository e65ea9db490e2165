package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("valid task with defaults", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(1, "Buy milk", "", "")
		require.NoError(t, err)

		assert.Equal(t, "Buy milk", task.Title)
		assert.Equal(t, TaskStatusPending, task.Status)
		assert.Equal(t, TaskPriorityMedium, task.Priority)
		assert.Equal(t, int64(1), task.UserID)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("new tasks are always pending", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(1, "Ship release", "cut the tag", TaskPriorityHigh)
		require.NoError(t, err)
		assert.Equal(t, TaskStatusPending, task.Status)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewTask(1, "", "", TaskPriorityLow)
		assert.ErrorIs(t, err, ErrEmptyTaskTitle)
	})

	t.Run("missing owner rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewTask(0, "Buy milk", "", "")
		assert.ErrorIs(t, err, ErrEmptyTaskOwner)
	})

	t.Run("unknown priority rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewTask(1, "Buy milk", "", TaskPriority("urgent"))
		assert.ErrorIs(t, err, ErrInvalidPriority)
	})
}

func TestTaskStatusValidate(t *testing.T) {
	t.Parallel()

	for _, status := range []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusDone} {
		assert.NoError(t, status.Validate())
	}
	assert.ErrorIs(t, TaskStatus("archived").Validate(), ErrInvalidStatus)
	assert.ErrorIs(t, TaskStatus("").Validate(), ErrInvalidStatus)
}

func TestTaskUpdateApply(t *testing.T) {
	t.Parallel()

	newTask := func() *Task {
		return &Task{
			ID:          10,
			Title:       "Original title",
			Description: "original description",
			Priority:    TaskPriorityLow,
			Status:      TaskStatusPending,
			CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			UserID:      1,
		}
	}

	t.Run("partial update leaves other fields untouched", func(t *testing.T) {
		t.Parallel()
		task := newTask()
		desc := "new description"
		update := &TaskUpdate{Description: &desc}
		require.NoError(t, update.Validate())

		update.Apply(task)

		assert.Equal(t, "new description", task.Description)
		assert.Equal(t, "Original title", task.Title)
		assert.Equal(t, TaskPriorityLow, task.Priority)
		assert.Equal(t, TaskStatusPending, task.Status)
		assert.True(t, task.UpdatedAt.After(task.CreatedAt))
	})

	t.Run("status regression is accepted", func(t *testing.T) {
		t.Parallel()
		task := newTask()
		task.Status = TaskStatusDone

		status := TaskStatusPending
		update := &TaskUpdate{Status: &status}
		require.NoError(t, update.Validate())

		update.Apply(task)
		assert.Equal(t, TaskStatusPending, task.Status)
	})

	t.Run("invalid status value rejected", func(t *testing.T) {
		t.Parallel()
		status := TaskStatus("bogus")
		update := &TaskUpdate{Status: &status}
		assert.ErrorIs(t, update.Validate(), ErrInvalidStatus)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		t.Parallel()
		title := ""
		update := &TaskUpdate{Title: &title}
		assert.ErrorIs(t, update.Validate(), ErrEmptyTaskTitle)
	})

	t.Run("IsEmpty", func(t *testing.T) {
		t.Parallel()
		assert.True(t, (&TaskUpdate{}).IsEmpty())
		title := "x"
		assert.False(t, (&TaskUpdate{Title: &title}).IsEmpty())
	})
}
