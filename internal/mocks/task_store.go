package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taskfolio/taskfolio-api/internal/domain"
	"github.com/taskfolio/taskfolio-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing. The in-memory
// default keeps tasks in a map and reproduces the store's ordering
// contract (created_at descending, newest first).
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, id int64, update *domain.TaskUpdate) (*domain.Task, error)
	DeleteFn  func(ctx context.Context, id int64) (bool, error)

	mu     sync.Mutex
	tasks  map[int64]*domain.Task
	nextID int64
	// seq breaks ordering ties between tasks created within the same
	// timestamp granularity.
	seq map[int64]int64
}

// Ensure MockTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with an empty task table.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
		seq:    make(map[int64]int64),
	}
}

// Create implements the TaskStore interface.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	created := *task
	created.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now
	m.tasks[created.ID] = &created
	m.seq[created.ID] = created.ID

	result := created
	return &result, nil
}

// GetByID implements the TaskStore interface.
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	copied := *task
	return &copied, nil
}

// Update implements the TaskStore interface.
func (m *MockTaskStore) Update(
	ctx context.Context,
	id int64,
	update *domain.TaskUpdate,
) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	update.Apply(task)

	copied := *task
	return &copied, nil
}

// Delete implements the TaskStore interface.
func (m *MockTaskStore) Delete(ctx context.Context, id int64) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return false, nil
	}
	delete(m.tasks, id)
	delete(m.seq, id)
	return true, nil
}

// ListByOwner implements the TaskStore interface.
func (m *MockTaskStore) ListByOwner(
	ctx context.Context,
	ownerID int64,
	filter store.TaskFilter,
	offset, limit int,
) ([]*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := m.matchLocked(ownerID, filter)

	// Newest first; creation sequence breaks timestamp ties.
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return m.seq[matched[i].ID] > m.seq[matched[j].ID]
	})

	if offset >= len(matched) {
		return []*domain.Task{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	result := make([]*domain.Task, len(matched))
	for i, task := range matched {
		copied := *task
		result[i] = &copied
	}
	return result, nil
}

// CountByOwner implements the TaskStore interface.
func (m *MockTaskStore) CountByOwner(
	ctx context.Context,
	ownerID int64,
	filter store.TaskFilter,
) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return int64(len(m.matchLocked(ownerID, filter))), nil
}

// matchLocked applies the shared owner+filter predicate. Callers must hold mu.
func (m *MockTaskStore) matchLocked(ownerID int64, filter store.TaskFilter) []*domain.Task {
	var matched []*domain.Task
	for _, task := range m.tasks {
		if task.UserID != ownerID {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && task.Priority != *filter.Priority {
			continue
		}
		matched = append(matched, task)
	}
	return matched
}
