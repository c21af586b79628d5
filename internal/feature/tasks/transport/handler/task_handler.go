// Package handler provides the HTTP handlers for the tasks feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager_backend/internal/api"
	"taskmanager_backend/internal/feature/tasks/domain/entity"
	"taskmanager_backend/internal/feature/tasks/usecase"
	jwtmw "taskmanager_backend/internal/platform/jwt"
)

// TaskUsecase defines the task operations consumed by this handler.
type TaskUsecase interface {
	List(ctx context.Context, ownerID, status string) ([]entity.Task, error)
	Create(ctx context.Context, ownerID string, in usecase.CreateTaskInput) (*entity.Task, error)
	Update(ctx context.Context, ownerID, taskID string, in usecase.UpdateTaskInput) (*entity.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}

// TaskHandler handles the HTTP requests of the task endpoints. All routes are
// behind the auth middleware; the owner is always the authenticated user.
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List handles GET /tasks?status=completed|pending.
func (h *TaskHandler) List(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), user.ID, c.Query("status"))
	if err != nil {
		slog.Error("task list failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.NewTaskListResponse(tasks))
}

// Create handles POST /tasks.
// - 400 on malformed body or validation failure (empty title, bad priority)
// - 201 with the created task on success
func (h *TaskHandler) Create(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req api.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), user.ID, usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		if usecase.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("task create failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, api.NewTaskResponse(task))
}

// Update handles PUT /tasks/:id.
// - 400 on malformed body, malformed id or validation failure
// - 404 when the task does not exist under the requesting owner
// - 200 with the updated task on success
func (h *TaskHandler) Update(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req api.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), user.ID, c.Param("id"), usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "task not found"})
		case usecase.IsValidationError(err):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("task update failed", "error", err, "user_id", user.ID, "task_id", c.Param("id"))
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, api.NewTaskResponse(task))
}

// Delete handles DELETE /tasks/:id.
// - 400 on malformed id
// - 404 when the task does not exist under the requesting owner
// - 200 on success
func (h *TaskHandler) Delete(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, usecase.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "task not found"})
		case errors.Is(err, usecase.ErrInvalidTaskID):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("task delete failed", "error", err, "user_id", user.ID, "task_id", c.Param("id"))
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "task deleted successfully"})
}
