// Package entity defines the domain entities for the tasks feature.
package entity

import "time"

// Task priorities. Medium is the default when none is supplied.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a single to-do item owned by exactly one user.
// Every query against tasks must be scoped by OwnerID; a task is never
// visible outside its owner.
type Task struct {
	// ID is the unique identifier for the task, assigned at creation.
	ID string `gorm:"primaryKey;size:36"`

	// Title is the short description of the task. Required, at most 200
	// characters after trimming.
	Title string `gorm:"size:200;not null"`

	// Description is the optional long-form text, at most 1000 characters.
	Description string `gorm:"size:1000"`

	// Priority is one of low, medium or high.
	Priority string `gorm:"size:16;not null;default:medium"`

	// Completed reports whether the task has been finished.
	Completed bool `gorm:"not null;default:false"`

	// OwnerID references the owning user. Immutable after creation.
	OwnerID string `gorm:"size:36;not null;index:task_owner_created,priority:1"`

	// CreatedAt is the timestamp when the task was created.
	// Listing orders by it descending, hence the composite index.
	CreatedAt time.Time `gorm:"index:task_owner_created,priority:2"`

	// UpdatedAt is the timestamp when the task was last updated.
	UpdatedAt time.Time
}

// ValidPriority reports whether p is one of the allowed priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
