package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taskfolio/taskfolio-api/internal/domain"
	"github.com/taskfolio/taskfolio-api/internal/platform/logger"
	"github.com/taskfolio/taskfolio-api/internal/store"
)

// CreateTaskInput carries the caller-supplied fields for a new task.
// Status is deliberately absent: new tasks always start pending.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    domain.TaskPriority
}

// TaskPage is the paginated listing envelope: one page of tasks plus the
// metadata needed to render pagination controls.
type TaskPage struct {
	Items []*domain.Task
	Total int64
	Page  int
	Pages int
	Size  int
}

// TaskService enforces ownership and state rules on top of the TaskStore.
//
// The status progression pending -> in_progress -> done is the intended
// lifecycle, but updates are not validated against it: any status value is
// accepted, including regressions.
type TaskService interface {
	// CreateTask creates a task owned by the actor, always in the pending
	// status. Returns ErrNoActor if actor is nil.
	CreateTask(ctx context.Context, input CreateTaskInput, actor *domain.User) (*domain.Task, error)

	// ListTasks returns the actor's tasks matching the filter, newest
	// first, with pagination metadata computed from offset and limit.
	ListTasks(ctx context.Context, actor *domain.User, filter store.TaskFilter, offset, limit int) (*TaskPage, error)

	// UpdateTask applies a partial update to a task the actor owns.
	// Returns ErrNoActor if actor is nil, store.ErrTaskNotFound if the
	// task does not exist, and ErrTaskNotOwned if it belongs to someone
	// else.
	UpdateTask(ctx context.Context, taskID int64, update *domain.TaskUpdate, actor *domain.User) (*domain.Task, error)

	// DeleteTask permanently removes a task the actor owns, with the same
	// authorization sequence as UpdateTask.
	DeleteTask(ctx context.Context, taskID int64, actor *domain.User) error
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if the task store is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.CreateTask.
// Any status supplied by the client is ignored; new tasks are pending.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	input CreateTaskInput,
	actor *domain.User,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if actor == nil {
		return nil, ErrNoActor
	}

	task, err := domain.NewTask(actor.ID, input.Title, input.Description, input.Priority)
	if err != nil {
		return nil, err
	}

	created, err := s.taskStore.Create(ctx, task)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.Int64("user_id", actor.ID))
		return nil, NewServiceError("create_task", "failed to save task", err)
	}

	return created, nil
}

// ListTasks implements TaskService.ListTasks.
// Page metadata follows page = offset/limit + 1 and pages = ceil(total/limit),
// with a minimum of one page even when there are no results.
func (s *taskServiceImpl) ListTasks(
	ctx context.Context,
	actor *domain.User,
	filter store.TaskFilter,
	offset, limit int,
) (*TaskPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if actor == nil {
		return nil, ErrNoActor
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	tasks, err := s.taskStore.ListByOwner(ctx, actor.ID, filter, offset, limit)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.Int64("user_id", actor.ID))
		return nil, NewServiceError("list_tasks", "failed to list tasks", err)
	}

	total, err := s.taskStore.CountByOwner(ctx, actor.ID, filter)
	if err != nil {
		log.Error("failed to count tasks",
			slog.String("error", err.Error()),
			slog.Int64("user_id", actor.ID))
		return nil, NewServiceError("list_tasks", "failed to count tasks", err)
	}

	page := offset/limit + 1
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}

	return &TaskPage{
		Items: tasks,
		Total: total,
		Page:  page,
		Pages: pages,
		Size:  limit,
	}, nil
}

// UpdateTask implements TaskService.UpdateTask.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	taskID int64,
	update *domain.TaskUpdate,
	actor *domain.User,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.authorize(ctx, taskID, actor); err != nil {
		return nil, err
	}

	if err := update.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.taskStore.Update(ctx, taskID, update)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			// Deleted between the ownership check and the write.
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID))
		return nil, NewServiceError("update_task", "failed to update task", err)
	}

	return updated, nil
}

// DeleteTask implements TaskService.DeleteTask.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID int64, actor *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.authorize(ctx, taskID, actor); err != nil {
		return err
	}

	deleted, err := s.taskStore.Delete(ctx, taskID)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID))
		return NewServiceError("delete_task", "failed to delete task", err)
	}
	if !deleted {
		// Deleted between the ownership check and the write.
		return store.ErrTaskNotFound
	}

	log.Info("task deleted",
		slog.Int64("task_id", taskID),
		slog.Int64("user_id", actor.ID))
	return nil
}

// authorize runs the shared mutation checks: an actor must be present, the
// task must exist, and the actor must own it. Non-owners get
// ErrTaskNotOwned rather than a not-found, which reveals existence to
// authenticated callers; preserved intentionally, see DESIGN.md.
func (s *taskServiceImpl) authorize(
	ctx context.Context,
	taskID int64,
	actor *domain.User,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if actor == nil {
		return nil, ErrNoActor
	}

	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to load task for authorization",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID))
		return nil, NewServiceError("authorize", "failed to load task", err)
	}

	if task.UserID != actor.ID {
		log.Warn("task access denied",
			slog.Int64("task_id", taskID),
			slog.Int64("owner_id", task.UserID),
			slog.Int64("actor_id", actor.ID))
		return nil, ErrTaskNotOwned
	}

	return task, nil
}
