// Package usecase implements the business logic for the tasks feature.
package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"taskmanager_backend/internal/feature/tasks/domain/entity"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
)

// Status filter values accepted by List. Any other value lists all tasks.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// TaskRepository abstracts the persistence layer for task entities. Every
// method that touches an existing task takes the owner id and filters on it
// together with the task id, never on the id alone.
type TaskRepository interface {
	// ListByOwner returns the owner's tasks ordered by creation time
	// descending. completed narrows to one completion state when non-nil.
	ListByOwner(ctx context.Context, ownerID string, completed *bool) ([]entity.Task, error)

	// Create persists a new task.
	Create(ctx context.Context, task *entity.Task) error

	// FindByIDAndOwner retrieves the task matching both id and owner.
	// Returns ErrTaskNotFound when no row matches.
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Task, error)

	// Update persists field changes to a task, filtered by id and owner.
	// Returns ErrTaskNotFound when no row matches.
	Update(ctx context.Context, task *entity.Task) error

	// DeleteByIDAndOwner removes the task in a single filtered statement.
	// Returns ErrTaskNotFound when no row matches.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error
}

// CreateTaskInput carries the fields accepted when creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	Completed   bool
}

// UpdateTaskInput carries a partial update; nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *string
	Completed   *bool
}

// TaskUsecase implements owner-scoped CRUD over tasks.
type TaskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase creates a new TaskUsecase.
func NewTaskUsecase(tasks TaskRepository) *TaskUsecase {
	return &TaskUsecase{tasks: tasks}
}

// List returns the owner's tasks, newest first. status narrows the result to
// completed or pending tasks; any other value returns all of them.
func (u *TaskUsecase) List(ctx context.Context, ownerID, status string) ([]entity.Task, error) {
	var completed *bool
	switch status {
	case StatusCompleted:
		v := true
		completed = &v
	case StatusPending:
		v := false
		completed = &v
	}
	return u.tasks.ListByOwner(ctx, ownerID, completed)
}

// Create validates and stores a new task for the owner. Title and description
// are trimmed; priority defaults to medium.
func (u *TaskUsecase) Create(ctx context.Context, ownerID string, in CreateTaskInput) (*entity.Task, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}

	if err := validateFields(title, description, priority); err != nil {
		return nil, err
	}

	task := &entity.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Priority:    priority,
		Completed:   in.Completed,
		OwnerID:     ownerID,
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies a partial update to the owner's task. The id is validated
// before any query; the load is filtered by id and owner so a task belonging
// to someone else is indistinguishable from a missing one. Only provided
// fields change, and changed fields are re-validated.
func (u *TaskUsecase) Update(ctx context.Context, ownerID, taskID string, in UpdateTaskInput) (*entity.Task, error) {
	if err := validateTaskID(taskID); err != nil {
		return nil, err
	}

	task, err := u.tasks.FindByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		task.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		task.Description = strings.TrimSpace(*in.Description)
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}

	if err := validateFields(task.Title, task.Description, task.Priority); err != nil {
		return nil, err
	}

	if err := u.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the owner's task. The ownership check and the delete are a
// single filtered statement in the repository.
func (u *TaskUsecase) Delete(ctx context.Context, ownerID, taskID string) error {
	if err := validateTaskID(taskID); err != nil {
		return err
	}
	return u.tasks.DeleteByIDAndOwner(ctx, taskID, ownerID)
}

// validateTaskID rejects malformed identifiers before they reach the store.
func validateTaskID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidTaskID
	}
	return nil
}

// validateFields checks the task field constraints shared by create and
// update. Lengths are counted in characters, not bytes, so multibyte text is
// bounded the same as ASCII.
func validateFields(title, description, priority string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if !entity.ValidPriority(priority) {
		return ErrInvalidPriority
	}
	return nil
}
