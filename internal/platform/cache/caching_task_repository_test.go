package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"taskmanager_backend/internal/feature/tasks/domain/entity"
)

// mockTaskRepository is a function-field mock of the TaskRepository interface.
type mockTaskRepository struct {
	listFn   func(ctx context.Context, ownerID string, completed *bool) ([]entity.Task, error)
	createFn func(ctx context.Context, t *entity.Task) error
	findFn   func(ctx context.Context, id, ownerID string) (*entity.Task, error)
	updateFn func(ctx context.Context, t *entity.Task) error
	deleteFn func(ctx context.Context, id, ownerID string) error
}

func (m *mockTaskRepository) ListByOwner(ctx context.Context, ownerID string, completed *bool) ([]entity.Task, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID, completed)
	}
	return nil, nil
}

func (m *mockTaskRepository) Create(ctx context.Context, t *entity.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Task, error) {
	if m.findFn != nil {
		return m.findFn(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *mockTaskRepository) Update(ctx context.Context, t *entity.Task) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, ownerID)
	}
	return nil
}

func sampleTasks() []entity.Task {
	return []entity.Task{
		{ID: "t1", Title: "Buy milk", Priority: entity.PriorityMedium, OwnerID: "owner-1"},
	}
}

// TestNewCachingTaskRepository_Defaults verifies default TTL and namespace.
func TestNewCachingTaskRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "tasks",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "tasks",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingTaskRepository(nil, tt.ttl, &mockTaskRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingTaskRepository_ListByOwner_NilRedis verifies a nil client
// bypasses the cache and calls the inner repository directly.
func TestCachingTaskRepository_ListByOwner_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockTaskRepository{
		listFn: func(ctx context.Context, ownerID string, completed *bool) ([]entity.Task, error) {
			return sampleTasks(), nil
		},
	}

	repo := NewCachingTaskRepository(nil, 5*time.Minute, inner, "tasks")

	tasks, err := repo.ListByOwner(context.Background(), "owner-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected 1 task, got %d", len(tasks))
	}
}

// TestCachingTaskRepository_ListByOwner_CacheHit verifies a hit serves from
// Redis without touching the inner repository.
func TestCachingTaskRepository_ListByOwner_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cachedJSON, _ := json.Marshal(sampleTasks())
	mock.ExpectGet("tasks:owner-1:all").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockTaskRepository{
		listFn: func(ctx context.Context, ownerID string, completed *bool) ([]entity.Task, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingTaskRepository(rdb, 5*time.Minute, inner, "tasks")
	tasks, err := repo.ListByOwner(context.Background(), "owner-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if len(tasks) != 1 {
		t.Errorf("expected 1 task, got %d", len(tasks))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingTaskRepository_ListByOwner_CacheMiss verifies a miss falls back
// to the store and populates the cache, with the status filter encoded in the
// key.
func TestCachingTaskRepository_ListByOwner_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(sampleTasks())

	completed := true
	mock.ExpectGet("tasks:owner-1:completed").RedisNil()
	mock.ExpectSet("tasks:owner-1:completed", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockTaskRepository{
		listFn: func(ctx context.Context, ownerID string, got *bool) ([]entity.Task, error) {
			if got == nil || !*got {
				t.Error("expected completed filter to be forwarded")
			}
			return sampleTasks(), nil
		},
	}

	repo := NewCachingTaskRepository(rdb, 5*time.Minute, inner, "tasks")
	tasks, err := repo.ListByOwner(context.Background(), "owner-1", &completed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected 1 task, got %d", len(tasks))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingTaskRepository_ListByOwner_InnerError verifies store errors
// propagate unchanged.
func TestCachingTaskRepository_ListByOwner_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")
	mock.ExpectGet("tasks:owner-1:all").RedisNil()

	inner := &mockTaskRepository{
		listFn: func(ctx context.Context, ownerID string, completed *bool) ([]entity.Task, error) {
			return nil, expectedErr
		},
	}

	repo := NewCachingTaskRepository(rdb, 5*time.Minute, inner, "tasks")
	_, err := repo.ListByOwner(context.Background(), "owner-1", nil)

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

// TestCachingTaskRepository_ListByOwner_CorruptedCache verifies a corrupted
// entry is dropped and the read falls back to the store.
func TestCachingTaskRepository_ListByOwner_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(sampleTasks())

	mock.ExpectGet("tasks:owner-1:all").SetVal("invalid json")
	mock.ExpectDel("tasks:owner-1:all").SetVal(1)
	mock.ExpectSet("tasks:owner-1:all", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockTaskRepository{
		listFn: func(ctx context.Context, ownerID string, completed *bool) ([]entity.Task, error) {
			return sampleTasks(), nil
		},
	}

	repo := NewCachingTaskRepository(rdb, 5*time.Minute, inner, "tasks")
	tasks, err := repo.ListByOwner(context.Background(), "owner-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected 1 task, got %d", len(tasks))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingTaskRepository_Create_InvalidatesOwner verifies a create drops
// the owner's cached lists.
func TestCachingTaskRepository_Create_InvalidatesOwner(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectScan(0, "tasks:owner-1:*", 200).SetVal([]string{"tasks:owner-1:all", "tasks:owner-1:pending"}, 0)
	mock.ExpectDel("tasks:owner-1:all", "tasks:owner-1:pending").SetVal(2)

	inner := &mockTaskRepository{}
	repo := NewCachingTaskRepository(rdb, 5*time.Minute, inner, "tasks")

	task := &entity.Task{ID: "t1", Title: "Buy milk", OwnerID: "owner-1"}
	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingTaskRepository_Create_InnerErrorSkipsInvalidation verifies a
// failed insert leaves the cache untouched.
func TestCachingTaskRepository_Create_InnerErrorSkipsInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("insert failed")
	inner := &mockTaskRepository{
		createFn: func(ctx context.Context, task *entity.Task) error {
			return expectedErr
		},
	}

	repo := NewCachingTaskRepository(rdb, 5*time.Minute, inner, "tasks")

	err := repo.Create(context.Background(), &entity.Task{ID: "t1", OwnerID: "owner-1"})
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected redis commands: %v", err)
	}
}

// TestCachingTaskRepository_Update_InvalidatesOwner verifies an update drops
// the owner's cached lists.
func TestCachingTaskRepository_Update_InvalidatesOwner(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectScan(0, "tasks:owner-1:*", 200).SetVal([]string{"tasks:owner-1:all"}, 0)
	mock.ExpectDel("tasks:owner-1:all").SetVal(1)

	repo := NewCachingTaskRepository(rdb, 5*time.Minute, &mockTaskRepository{}, "tasks")

	task := &entity.Task{ID: "t1", Title: "Buy milk", OwnerID: "owner-1", Completed: true}
	if err := repo.Update(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingTaskRepository_Delete_InvalidatesOwner verifies a delete drops
// the owner's cached lists, even when nothing is currently cached.
func TestCachingTaskRepository_Delete_InvalidatesOwner(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	// SCAN finds no keys; no DEL is issued.
	mock.ExpectScan(0, "tasks:owner-1:*", 200).SetVal([]string{}, 0)

	repo := NewCachingTaskRepository(rdb, 5*time.Minute, &mockTaskRepository{}, "tasks")

	if err := repo.DeleteByIDAndOwner(context.Background(), "t1", "owner-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingTaskRepository_FindByIDAndOwner_PassesThrough verifies single
// task lookups never touch Redis.
func TestCachingTaskRepository_FindByIDAndOwner_PassesThrough(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	want := &entity.Task{ID: "t1", Title: "Buy milk", OwnerID: "owner-1"}
	inner := &mockTaskRepository{
		findFn: func(ctx context.Context, id, ownerID string) (*entity.Task, error) {
			return want, nil
		},
	}

	repo := NewCachingTaskRepository(rdb, 5*time.Minute, inner, "tasks")

	got, err := repo.FindByIDAndOwner(context.Background(), "t1", "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("expected task %q, got %q", want.ID, got.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected redis commands: %v", err)
	}
}
