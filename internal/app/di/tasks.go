// Package di wires concrete implementations to the usecase interfaces.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"taskmanager_backend/internal/app/config"
	taskadapters "taskmanager_backend/internal/feature/tasks/adapters"
	"taskmanager_backend/internal/feature/tasks/usecase"
	"taskmanager_backend/internal/platform/cache"
)

// NewTaskRepository creates the TaskRepository implementation. When Redis is
// available the GORM repository is wrapped with the caching decorator;
// otherwise queries go straight to the database.
func NewTaskRepository(rdb *redis.Client, db *gorm.DB, cfg config.RedisConfig) usecase.TaskRepository {
	repo := taskadapters.NewTaskRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingTaskRepository(rdb, cfg.CacheTTL, repo, "tasks")
}
