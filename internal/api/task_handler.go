package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/taskfolio/taskfolio-api/internal/api/shared"
	"github.com/taskfolio/taskfolio-api/internal/domain"
	"github.com/taskfolio/taskfolio-api/internal/platform/logger"
	"github.com/taskfolio/taskfolio-api/internal/service"
	"github.com/taskfolio/taskfolio-api/internal/store"
)

// Listing page size bounds, matching the query parameter contract.
const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
		logger:      log.With(slog.String("component", "task_handler")),
	}
}

// List handles GET /tasks requests. Results are scoped to the authenticated
// user, newest first, optionally filtered by status and priority.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireUser(w, r)
	if !ok {
		return
	}

	page, size, err := parsePagination(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	filter, err := parseTaskFilter(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	result, err := h.taskService.ListTasks(r.Context(), actor, filter, (page-1)*size, size)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskPageToResponse(result))
}

// Create handles POST /tasks requests.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	actor, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req TaskCreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
	}, actor)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", actor.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// Update handles PUT /tasks/{id} requests. Only fields present in the body
// are changed.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireUser(w, r)
	if !ok {
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req TaskUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	update := req.toDomainUpdate()
	if err := update.Validate(); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), taskID, update, actor)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Delete handles DELETE /tasks/{id} requests.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	actor, ok := requireUser(w, r)
	if !ok {
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), taskID, actor); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("task deleted",
		slog.Int64("task_id", taskID),
		slog.Int64("user_id", actor.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, DetailResponse{Detail: "Task deleted successfully"})
}

// requireUser extracts the authenticated user from the request context,
// writing a bearer challenge when absent.
func requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithBearerChallenge(w, r, "Could not validate credentials")
		return nil, false
	}
	return user, true
}

// parseTaskID extracts the numeric task ID from the URL path.
func parseTaskID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, domain.NewValidationError("id", "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer", domain.ErrInvalidID)
	}
	return id, nil
}

// parsePagination reads the page and size query parameters, applying
// defaults and bounds. Page numbers start at 1 and sizes run 1 to 100.
func parsePagination(r *http.Request) (page, size int, err error) {
	page, err = parseIntParam(r, "page", 1, 1, 0)
	if err != nil {
		return 0, 0, err
	}
	size, err = parseIntParam(r, "size", defaultPageSize, 1, maxPageSize)
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

// parseIntParam parses one integer query parameter with a default and
// inclusive bounds. A max of 0 means unbounded above.
func parseIntParam(r *http.Request, name string, def, min, max int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer", domain.ErrValidation)
	}
	if value < min || (max > 0 && value > max) {
		return 0, domain.NewValidationError(name, "is out of range", domain.ErrValidation)
	}
	return value, nil
}

// parseTaskFilter reads the optional status and priority query parameters.
// Values outside the known enums are rejected rather than silently matching
// nothing.
func parseTaskFilter(r *http.Request) (store.TaskFilter, error) {
	var filter store.TaskFilter

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.TaskStatus(raw)
		if err := status.Validate(); err != nil {
			return store.TaskFilter{}, err
		}
		filter.Status = &status
	}

	if raw := r.URL.Query().Get("priority"); raw != "" {
		priority := domain.TaskPriority(raw)
		if err := priority.Validate(); err != nil {
			return store.TaskFilter{}, err
		}
		filter.Priority = &priority
	}

	return filter, nil
}
