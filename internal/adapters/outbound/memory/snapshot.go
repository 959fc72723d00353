package memory

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SnapshotRepository keeps task snapshots in a bounded LRU with a fixed TTL.
type SnapshotRepository struct {
	lru *expirable.LRU[string, domain.TaskSnapshot]
}

// NewSnapshotRepository creates a SnapshotRepository holding at most size snapshots.
func NewSnapshotRepository(size int, ttl time.Duration) SnapshotRepository {
	return SnapshotRepository{
		lru: expirable.NewLRU[string, domain.TaskSnapshot](size, nil, ttl),
	}
}

// GetSnapshot returns a copy of the user's snapshot.
func (r SnapshotRepository) GetSnapshot(_ context.Context, userID string) (domain.TaskSnapshot, bool, error) {
	snapshot, ok := r.lru.Get(userID)
	if !ok {
		return domain.TaskSnapshot{}, false, nil
	}
	return snapshot.Clone(), true, nil
}

// SaveSnapshot stores a copy of snapshot.
func (r SnapshotRepository) SaveSnapshot(_ context.Context, snapshot domain.TaskSnapshot) error {
	r.lru.Add(snapshot.UserID, snapshot.Clone())
	return nil
}

// DeleteSnapshot drops the user's snapshot.
func (r SnapshotRepository) DeleteSnapshot(_ context.Context, userID string) error {
	r.lru.Remove(userID)
	return nil
}

// InitSnapshotRepository registers the in-memory domain.TaskSnapshotRepository.
type InitSnapshotRepository struct {
	Size int           `config:"TASK_CACHE_SIZE" default:"1024"`
	TTL  time.Duration `config:"TASK_CACHE_TTL" default:"10m"`
}

// Initialize registers the SnapshotRepository in the dependency container.
func (i InitSnapshotRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TaskSnapshotRepository](NewSnapshotRepository(i.Size, i.TTL))
	return ctx, nil
}
