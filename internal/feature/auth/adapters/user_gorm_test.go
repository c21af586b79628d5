package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskmanager_backend/internal/feature/auth/domain/entity"
	"taskmanager_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError matches the production connection so duplicate-key mapping
// behaves identically.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newUser(email string) *entity.User {
	return &entity.User{
		ID:       uuid.NewString(),
		Name:     "Test User",
		Email:    email,
		Password: "hashed_password",
	}
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		user := newUser("test@example.com")
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email maps to ErrEmailAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		require.NoError(t, repo.Create(context.Background(), newUser("duplicate@example.com")))

		err := repo.Create(context.Background(), newUser("duplicate@example.com"))
		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})

	t.Run("email uniqueness is case sensitive", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		require.NoError(t, repo.Create(context.Background(), newUser("alice@example.com")))

		// A different casing is a different email in this store.
		err := repo.Create(context.Background(), newUser("Alice@example.com"))
		assert.NoError(t, err)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	t.Run("exact match including hash", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		created := newUser("find@example.com")
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByEmail(context.Background(), "find@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "hashed_password", found.Password)
	})

	t.Run("missing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	created := newUser("byid@example.com")
	require.NoError(t, repo.Create(context.Background(), created))

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, found.Email)

	_, err = repo.FindByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestUserRepository_FindByResetTokenHash(t *testing.T) {
	hash := "aaaabbbbccccddddeeeeffff0000111122223333444455556666777788889999"

	seed := func(t *testing.T, repo *userGorm, expiresAt time.Time) *entity.User {
		t.Helper()
		u := newUser("reset@example.com")
		u.ResetTokenHash = &hash
		u.ResetTokenExpiresAt = &expiresAt
		require.NoError(t, repo.Create(context.Background(), u))
		return u
	}

	t.Run("valid pending token resolves", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)
		created := seed(t, repo, time.Now().Add(10*time.Minute))

		found, err := repo.FindByResetTokenHash(context.Background(), hash, time.Now())
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("expired token does not resolve", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)
		seed(t, repo, time.Now().Add(-time.Minute))

		_, err := repo.FindByResetTokenHash(context.Background(), hash, time.Now())
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("unknown hash does not resolve", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)
		seed(t, repo, time.Now().Add(10*time.Minute))

		_, err := repo.FindByResetTokenHash(context.Background(), "deadbeef", time.Now())
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := newUser("update@example.com")
	expires := time.Now().Add(10 * time.Minute)
	hash := "somehash"
	user.ResetTokenHash = &hash
	user.ResetTokenExpiresAt = &expires
	require.NoError(t, repo.Create(context.Background(), user))

	// Clearing the reset fields must persist as NULLs.
	user.Password = "new_hashed_password"
	user.ResetTokenHash = nil
	user.ResetTokenExpiresAt = nil
	require.NoError(t, repo.Update(context.Background(), user))

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new_hashed_password", found.Password)
	assert.Nil(t, found.ResetTokenHash)
	assert.Nil(t, found.ResetTokenExpiresAt)
}
