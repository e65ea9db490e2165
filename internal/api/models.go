package api

import (
	"time"

	"github.com/taskfolio/taskfolio-api/internal/domain"
	"github.com/taskfolio/taskfolio-api/internal/service"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse defines the public representation of a user. The password
// hash never appears here.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// userToResponse converts a domain user to its API representation.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// TaskCreateRequest defines the payload for creating a task. Status is not
// accepted here: new tasks always start pending.
type TaskCreateRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
}

// TaskUpdateRequest defines the payload for partially updating a task.
// Only fields present in the JSON body are applied; absent fields leave the
// task untouched.
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// toDomainUpdate converts the request into a domain-level partial update.
// Enum fields are validated by the returned value's Validate method.
func (r *TaskUpdateRequest) toDomainUpdate() *domain.TaskUpdate {
	update := &domain.TaskUpdate{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Priority != nil {
		priority := domain.TaskPriority(*r.Priority)
		update.Priority = &priority
	}
	if r.Status != nil {
		status := domain.TaskStatus(*r.Status)
		update.Status = &status
	}
	return update
}

// TaskResponse defines the public representation of a task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// taskToResponse converts a domain task to its API representation.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// PaginatedTasksResponse is the envelope for the task listing endpoint.
type PaginatedTasksResponse struct {
	Items []TaskResponse `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
	Size  int            `json:"size"`
}

// taskPageToResponse converts a service page into the API envelope.
func taskPageToResponse(page *service.TaskPage) PaginatedTasksResponse {
	items := make([]TaskResponse, 0, len(page.Items))
	for _, task := range page.Items {
		items = append(items, taskToResponse(task))
	}
	return PaginatedTasksResponse{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Pages: page.Pages,
		Size:  page.Size,
	}
}

// DetailResponse carries a human-readable outcome message, used by the
// task deletion endpoint.
type DetailResponse struct {
	Detail string `json:"detail"`
}
