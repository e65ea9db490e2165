package domain

import (
	"errors"
	"fmt"
	"time"
)

// Task validation errors
var (
	ErrEmptyTaskTitle   = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong = errors.New("task title must be at most 255 characters long")
	ErrEmptyTaskOwner   = errors.New("task owner cannot be empty")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrInvalidPriority  = errors.New("invalid task priority")
)

// TaskStatus is the closed set of lifecycle states for a task.
// The intended progression is pending -> in_progress -> done, but no
// ordering is enforced on updates.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Validate checks that the status is one of the declared values.
func (s TaskStatus) Validate() error {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
}

// TaskPriority is the closed set of priority levels for a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Validate checks that the priority is one of the declared values.
func (p TaskPriority) Validate() error {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPriority, string(p))
	}
}

// Task represents a single tracked task owned by exactly one user.
// Visibility and mutation are scoped to the owner.
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	UserID      int64        `json:"user_id"`
}

// NewTask creates a Task owned by userID. New tasks always start in the
// pending status; callers cannot override it. Priority defaults to medium
// when empty. The ID is zero until the store assigns one.
func NewTask(userID int64, title, description string, priority TaskPriority) (*Task, error) {
	if priority == "" {
		priority = TaskPriorityMedium
	}

	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      TaskStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      userID,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if len(t.Title) > 255 {
		return ErrTaskTitleTooLong
	}

	if t.UserID == 0 {
		return ErrEmptyTaskOwner
	}

	if err := t.Priority.Validate(); err != nil {
		return err
	}

	return t.Status.Validate()
}

// TaskUpdate carries a partial update for a task. Nil fields are left
// untouched; only fields explicitly present in the request are applied.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *TaskPriority
	Status      *TaskStatus
}

// Validate checks any fields that are present.
func (u *TaskUpdate) Validate() error {
	if u.Title != nil {
		if *u.Title == "" {
			return ErrEmptyTaskTitle
		}
		if len(*u.Title) > 255 {
			return ErrTaskTitleTooLong
		}
	}

	if u.Priority != nil {
		if err := u.Priority.Validate(); err != nil {
			return err
		}
	}

	if u.Status != nil {
		if err := u.Status.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// IsEmpty reports whether the update carries no fields at all.
func (u *TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Priority == nil && u.Status == nil
}

// Apply merges the update into the task field by field and refreshes the
// update timestamp. Validation is the caller's responsibility.
func (u *TaskUpdate) Apply(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	t.UpdatedAt = time.Now().UTC()
}
