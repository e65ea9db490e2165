package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taskfolio/taskfolio-api/internal/domain"
	"github.com/taskfolio/taskfolio-api/internal/platform/logger"
	"github.com/taskfolio/taskfolio-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection that should be
// initialized and managed by the caller. If logger is nil, a default
// logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create.
// The database assigns the ID and timestamps.
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("user_id", task.UserID))
		return nil, err
	}

	query := `
		INSERT INTO tasks (title, description, priority, status, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	created := *task
	err := s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		string(task.Priority),
		string(task.Status),
		task.UserID,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during task creation",
				slog.String("error", err.Error()),
				slog.Int64("user_id", task.UserID))
			return nil, fmt.Errorf("%w: user with ID %d not found",
				store.ErrInvalidEntity, task.UserID)
		}

		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.Int64("user_id", task.UserID))
		return nil, err
	}

	log.Info("task created successfully",
		slog.Int64("task_id", created.ID),
		slog.Int64("user_id", created.UserID),
		slog.String("status", string(created.Status)))
	return &created, nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, priority, status, created_at, updated_at, user_id
		FROM tasks
		WHERE id = $1
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, err
	}

	return task, nil
}

// Update implements store.TaskStore.Update.
// Only the fields present in the update are written; updated_at is always
// refreshed. The update is a single statement, so concurrent writers
// resolve last-writer-wins at the row level.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Update(
	ctx context.Context,
	id int64,
	update *domain.TaskUpdate,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := update.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, err
	}

	setClauses := []string{"updated_at = now()"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if update.Title != nil {
		setClauses = append(setClauses, "title = "+arg(*update.Title))
	}
	if update.Description != nil {
		setClauses = append(setClauses, "description = "+arg(*update.Description))
	}
	if update.Priority != nil {
		setClauses = append(setClauses, "priority = "+arg(string(*update.Priority)))
	}
	if update.Status != nil {
		setClauses = append(setClauses, "status = "+arg(string(*update.Status)))
	}

	query := fmt.Sprintf(`
		UPDATE tasks
		SET %s
		WHERE id = %s
		RETURNING id, title, description, priority, status, created_at, updated_at, user_id
	`, strings.Join(setClauses, ", "), arg(id))

	task, err := scanTask(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for update", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, err
	}

	log.Info("task updated successfully",
		slog.Int64("task_id", task.ID),
		slog.String("status", string(task.Status)))
	return task, nil
}

// Delete implements store.TaskStore.Delete.
// Returns true if a row existed and was removed, false otherwise.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return false, err
	}

	if rowsAffected == 0 {
		log.Debug("task not found for delete", slog.Int64("task_id", id))
		return false, nil
	}

	log.Info("task deleted successfully", slog.Int64("task_id", id))
	return true, nil
}

// ListByOwner implements store.TaskStore.ListByOwner.
// Results are ordered by creation timestamp descending (newest first);
// offset and limit apply after filtering and ordering.
func (s *PostgresTaskStore) ListByOwner(
	ctx context.Context,
	ownerID int64,
	filter store.TaskFilter,
	offset, limit int,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	where, args := ownerFilterClause(ownerID, filter)
	query := fmt.Sprintf(`
		SELECT id, title, description, priority, status, created_at, updated_at, user_id
		FROM tasks
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks by owner",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", ownerID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed tasks by owner",
		slog.Int64("owner_id", ownerID),
		slog.Int("count", len(tasks)))
	return tasks, nil
}

// CountByOwner implements store.TaskStore.CountByOwner.
// The count uses the same filter predicate as ListByOwner, unpaginated.
func (s *PostgresTaskStore) CountByOwner(
	ctx context.Context,
	ownerID int64,
	filter store.TaskFilter,
) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where, args := ownerFilterClause(ownerID, filter)
	query := fmt.Sprintf(`SELECT count(*) FROM tasks WHERE %s`, where)

	var total int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Error("failed to count tasks by owner",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", ownerID))
		return 0, err
	}

	return total, nil
}

// ownerFilterClause builds the shared WHERE clause for ListByOwner and
// CountByOwner so both always apply the same predicate.
func ownerFilterClause(ownerID int64, filter store.TaskFilter) (string, []any) {
	clauses := []string{"user_id = $1"}
	args := []any{ownerID}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Priority != nil {
		args = append(args, string(*filter.Priority))
		clauses = append(clauses, fmt.Sprintf("priority = $%d", len(args)))
	}

	return strings.Join(clauses, " AND "), args
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row, converting the stored enum strings back to
// their domain types.
func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var priority, status string

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&priority,
		&status,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.UserID,
	)
	if err != nil {
		return nil, err
	}

	task.Priority = domain.TaskPriority(priority)
	task.Status = domain.TaskStatus(status)
	return &task, nil
}
