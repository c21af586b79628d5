// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"taskmanager_backend/internal/feature/tasks/domain/entity"
	"taskmanager_backend/internal/feature/tasks/usecase"
)

// CachingTaskRepository decorates a TaskRepository with Redis caching of list
// queries. It implements the decorator pattern, transparently adding caching
// without modifying the underlying repository. Every write for an owner
// invalidates that owner's cached lists before returning, so a client reads
// its own writes.
type CachingTaskRepository struct {
	inner     usecase.TaskRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies the interface.
var _ usecase.TaskRepository = (*CachingTaskRepository)(nil)

// NewCachingTaskRepository decorates a TaskRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "tasks". A nil rdb disables caching entirely; calls pass straight through.
func NewCachingTaskRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TaskRepository, namespace string) *CachingTaskRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "tasks"
	}
	return &CachingTaskRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListByOwner retrieves tasks, checking the cache first and falling back to
// the underlying repository on a miss.
func (c *CachingTaskRepository) ListByOwner(ctx context.Context, ownerID string, completed *bool) ([]entity.Task, error) {
	if c.rdb == nil {
		return c.inner.ListByOwner(ctx, ownerID, completed)
	}

	key := c.cacheKey(ownerID, completed)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Task
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Corrupted entry: drop it and fall through to the store.
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListByOwner(ctx, ownerID, completed)
	if err != nil {
		return nil, err
	}

	// Best effort: a failed cache write never fails the read.
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Create inserts the task and invalidates the owner's cached lists.
func (c *CachingTaskRepository) Create(ctx context.Context, t *entity.Task) error {
	if err := c.inner.Create(ctx, t); err != nil {
		return err
	}
	c.invalidateOwner(ctx, t.OwnerID)
	return nil
}

// FindByIDAndOwner reads through to the store; single-task lookups are cheap
// and caching them would complicate invalidation for no measurable win.
func (c *CachingTaskRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Task, error) {
	return c.inner.FindByIDAndOwner(ctx, id, ownerID)
}

// Update writes the task and invalidates the owner's cached lists.
func (c *CachingTaskRepository) Update(ctx context.Context, t *entity.Task) error {
	if err := c.inner.Update(ctx, t); err != nil {
		return err
	}
	c.invalidateOwner(ctx, t.OwnerID)
	return nil
}

// DeleteByIDAndOwner deletes the task and invalidates the owner's cached lists.
func (c *CachingTaskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	if err := c.inner.DeleteByIDAndOwner(ctx, id, ownerID); err != nil {
		return err
	}
	c.invalidateOwner(ctx, ownerID)
	return nil
}

// invalidateOwner drops every cached list for the owner. Best effort: a
// failed invalidation only shortens cache coherence to the TTL.
func (c *CachingTaskRepository) invalidateOwner(ctx context.Context, ownerID string) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, fmt.Sprintf("%s:%s:*", c.namespace, ownerID))
}

// cacheKey generates the cache key for one list query.
func (c *CachingTaskRepository) cacheKey(ownerID string, completed *bool) string {
	filter := "all"
	if completed != nil {
		if *completed {
			filter = "completed"
		} else {
			filter = "pending"
		}
	}
	return fmt.Sprintf("%s:%s:%s", c.namespace, ownerID, filter)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingTaskRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
