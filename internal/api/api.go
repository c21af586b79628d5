// Package api defines the JSON request and response shapes of the HTTP API.
package api

import (
	"time"

	authentity "taskmanager_backend/internal/feature/auth/domain/entity"
	taskentity "taskmanager_backend/internal/feature/tasks/domain/entity"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest is the body of POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password/:token.
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// CreateTaskRequest is the body of POST /tasks. Title is re-validated after
// trimming in the usecase; priority membership is enforced here as well so
// obviously bad input fails fast.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Completed   bool   `json:"completed"`
}

// UpdateTaskRequest is the body of PUT /tasks/:id. Absent fields are left
// unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Completed   *bool   `json:"completed"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a plain informational body.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public projection of a user. The password hash and the
// reset-token fields are never serialized.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse pairs a user with a freshly issued bearer token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ForgotPasswordResponse reports the outcome of a reset request. The
// development fields are populated only when the email could not be sent.
type ForgotPasswordResponse struct {
	Message          string `json:"message"`
	EmailSent        bool   `json:"emailSent"`
	DevelopmentToken string `json:"developmentToken,omitempty"`
	ResetURL         string `json:"resetUrl,omitempty"`
}

// TaskResponse is the public projection of a task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskListResponse wraps a list of tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// NewUserResponse projects a user entity onto its public shape.
func NewUserResponse(u *authentity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// NewTaskResponse projects a task entity onto its public shape.
func NewTaskResponse(t *taskentity.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTaskListResponse projects a slice of task entities.
func NewTaskListResponse(tasks []taskentity.Task) TaskListResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return TaskListResponse{Tasks: out}
}
