// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user, assigned at creation.
	ID string `gorm:"primaryKey;size:36"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users. Matching is exact (case-sensitive).
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// ResetTokenHash is the SHA-256 hex digest of a pending password-reset
	// token. The plaintext token is never persisted. Nil when no reset is
	// outstanding.
	ResetTokenHash *string `gorm:"size:64;index"`

	// ResetTokenExpiresAt is the instant after which the pending reset token
	// is no longer valid. Set and cleared together with ResetTokenHash.
	ResetTokenExpiresAt *time.Time

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
