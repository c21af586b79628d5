// Package adapters provides the repository implementations for the tasks feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskmanager_backend/internal/feature/tasks/domain/entity"
	"taskmanager_backend/internal/feature/tasks/usecase"
)

// taskGorm is the GORM-backed implementation of the TaskRepository interface.
// Every lookup, update and delete carries owner_id in the WHERE clause
// alongside the task id.
type taskGorm struct {
	db *gorm.DB
}

// Compile-time check that taskGorm implements usecase.TaskRepository.
var _ usecase.TaskRepository = (*taskGorm)(nil)

// NewTaskRepository creates a taskGorm bound to the given gorm.DB connection.
func NewTaskRepository(db *gorm.DB) *taskGorm {
	return &taskGorm{db: db}
}

// ListByOwner returns the owner's tasks, newest first. completed narrows to a
// single completion state when non-nil.
func (r *taskGorm) ListByOwner(ctx context.Context, ownerID string, completed *bool) ([]entity.Task, error) {
	q := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC")
	if completed != nil {
		q = q.Where("completed = ?", *completed)
	}
	var tasks []entity.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create inserts the task.
func (r *taskGorm) Create(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindByIDAndOwner retrieves a task filtered by both id and owner. A task
// that exists under a different owner reports usecase.ErrTaskNotFound.
func (r *taskGorm) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Task, error) {
	var t entity.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update writes the mutable columns of the task, filtered by id and owner.
// The owner filter is kept even though the preceding load was owner-scoped.
func (r *taskGorm) Update(ctx context.Context, t *entity.Task) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&entity.Task{}).
		Where("id = ? AND owner_id = ?", t.ID, t.OwnerID).
		Updates(map[string]interface{}{
			"title":       t.Title,
			"description": t.Description,
			"priority":    t.Priority,
			"completed":   t.Completed,
			"updated_at":  now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTaskNotFound
	}
	t.UpdatedAt = now
	return nil
}

// DeleteByIDAndOwner removes the task in one filtered statement, so the
// ownership check and the delete cannot be separated.
func (r *taskGorm) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&entity.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTaskNotFound
	}
	return nil
}
