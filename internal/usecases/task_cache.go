package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

const upstreamTaskStore = "task store"

// TaskCache keeps a per-user snapshot of tasks. Snapshots are loaded from
// the task store on first access and then only changed through the Apply
// methods or dropped with Invalidate.
type TaskCache interface {
	// Get returns the snapshot of userID, loading it on a miss.
	Get(ctx context.Context, userID string) (domain.TaskSnapshot, error)
	// ApplyCreated appends created tasks to a cached snapshot.
	ApplyCreated(ctx context.Context, userID string, created []domain.Task) error
	// ApplyDeleted removes deleted tasks from a cached snapshot.
	ApplyDeleted(ctx context.Context, userID string, taskIDs []string) error
	// ApplyUpdated replaces a task held by a cached snapshot.
	ApplyUpdated(ctx context.Context, userID string, task domain.Task) error
	// Invalidate drops the snapshot so the next Get reloads it.
	Invalidate(ctx context.Context, userID string) error
}

// TaskCacheImpl is the implementation of TaskCache.
type TaskCacheImpl struct {
	snapshots    domain.TaskSnapshotRepository
	store        domain.TaskStore
	timeProvider domain.CurrentTimeProvider
	storeTimeout time.Duration
}

// NewTaskCacheImpl creates a new instance of TaskCacheImpl.
func NewTaskCacheImpl(
	snapshots domain.TaskSnapshotRepository,
	store domain.TaskStore,
	timeProvider domain.CurrentTimeProvider,
	storeTimeout time.Duration,
) TaskCacheImpl {
	return TaskCacheImpl{
		snapshots:    snapshots,
		store:        store,
		timeProvider: timeProvider,
		storeTimeout: storeTimeout,
	}
}

// Get returns the snapshot of userID, loading it from the task store on a miss.
func (c TaskCacheImpl) Get(ctx context.Context, userID string) (domain.TaskSnapshot, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	snapshot, found, err := c.snapshots.GetSnapshot(spanCtx, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.TaskSnapshot{}, err
	}
	RecordCacheLookup(spanCtx, "tasks", found)
	if found {
		return snapshot, nil
	}

	loadCtx := spanCtx
	if c.storeTimeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(spanCtx, c.storeTimeout)
		defer cancel()
	}
	tasks, err := c.store.FindTasksByUser(loadCtx, userID)
	if err != nil {
		err = toUpstreamErr(upstreamTaskStore, err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.TaskSnapshot{}, err
	}

	snapshot = domain.TaskSnapshot{
		UserID:   userID,
		Tasks:    tasks,
		LoadedAt: c.timeProvider.Now(),
	}
	if err := c.snapshots.SaveSnapshot(spanCtx, snapshot); telemetry.RecordErrorAndStatus(span, err) {
		return domain.TaskSnapshot{}, err
	}
	return snapshot, nil
}

// ApplyCreated appends created tasks to the snapshot of userID. A missing
// snapshot is left missing: the next load already sees the new tasks.
func (c TaskCacheImpl) ApplyCreated(ctx context.Context, userID string, created []domain.Task) error {
	return c.update(ctx, userID, func(s *domain.TaskSnapshot) {
		s.Append(created...)
	})
}

// ApplyDeleted removes the given tasks from the snapshot of userID.
func (c TaskCacheImpl) ApplyDeleted(ctx context.Context, userID string, taskIDs []string) error {
	return c.update(ctx, userID, func(s *domain.TaskSnapshot) {
		s.Remove(taskIDs...)
	})
}

// ApplyUpdated replaces the cached copy of task in the snapshot of userID.
func (c TaskCacheImpl) ApplyUpdated(ctx context.Context, userID string, task domain.Task) error {
	return c.update(ctx, userID, func(s *domain.TaskSnapshot) {
		s.Replace(task)
	})
}

// Invalidate drops the snapshot of userID.
func (c TaskCacheImpl) Invalidate(ctx context.Context, userID string) error {
	return c.snapshots.DeleteSnapshot(ctx, userID)
}

func (c TaskCacheImpl) update(ctx context.Context, userID string, fn func(*domain.TaskSnapshot)) error {
	snapshot, found, err := c.snapshots.GetSnapshot(ctx, userID)
	if err != nil || !found {
		return err
	}
	updated := snapshot.Clone()
	fn(&updated)
	return c.snapshots.SaveSnapshot(ctx, updated)
}

// InitTaskCache initializes the TaskCache.
type InitTaskCache struct {
	Snapshots    domain.TaskSnapshotRepository `resolve:""`
	Store        domain.TaskStore              `resolve:""`
	TimeProvider domain.CurrentTimeProvider    `resolve:""`
	StoreTimeout time.Duration                 `config:"STORE_TIMEOUT" default:"10s"`
}

// Initialize registers the TaskCache in the dependency container.
func (i InitTaskCache) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TaskCache](NewTaskCacheImpl(i.Snapshots, i.Store, i.TimeProvider, i.StoreTimeout))
	return ctx, nil
}
