package store

import (
	"context"

	"github.com/taskfolio/taskfolio-api/internal/domain"
)

// TaskFilter narrows task listings and counts. Nil fields apply no
// constraint; set fields are matched exactly.
type TaskFilter struct {
	Status   *domain.TaskStatus
	Priority *domain.TaskPriority
}

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// Create saves a new task to the store and returns the stored record
	// with its assigned ID and timestamps.
	// Returns validation errors from the domain Task if data is invalid.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update applies a partial update to an existing task, refreshes the
	// update timestamp, and returns the reloaded record.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id int64, update *domain.TaskUpdate) (*domain.Task, error)

	// Delete removes a task permanently. Returns true if a row existed and
	// was removed, false otherwise.
	Delete(ctx context.Context, id int64) (bool, error)

	// ListByOwner retrieves the owner's tasks matching the filter, ordered
	// by creation timestamp descending (newest first), with offset/limit
	// applied after filtering and ordering.
	ListByOwner(ctx context.Context, ownerID int64, filter TaskFilter, offset, limit int) ([]*domain.Task, error)

	// CountByOwner counts the owner's tasks matching the filter,
	// unpaginated.
	CountByOwner(ctx context.Context, ownerID int64, filter TaskFilter) (int64, error)
}
