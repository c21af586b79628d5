// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskmanager_backend/internal/feature/auth/domain/entity"
	"taskmanager_backend/internal/feature/auth/usecase"
)

// userGorm is the GORM-backed implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements usecase.UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a userGorm bound to the given gorm.DB connection.
// Constructor for dependency injection.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. A violation of the unique email index is mapped to
// usecase.ErrEmailAlreadyExists. Requires the connection to be opened with
// TranslateError so the duplicate-key case is driver independent.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by exact email match, including the password
// hash. Returns usecase.ErrUserNotFound when no user matches.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by id.
// Returns usecase.ErrUserNotFound when no user matches.
func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByResetTokenHash retrieves the user holding the given pending
// reset-token hash whose window is still open at now. Hash match and expiry
// are a single filtered query, so an expired token never resolves to a user.
func (r *userGorm) FindByResetTokenHash(ctx context.Context, hash string, now time.Time) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Where("reset_token_hash = ? AND reset_token_expires_at > ?", hash, now).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update writes the full user row, including nil reset fields so a completed
// reset clears them in storage.
func (r *userGorm) Update(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
