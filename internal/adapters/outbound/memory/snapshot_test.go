package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepository(t *testing.T) {
	ctx := context.Background()
	snapshot := domain.TaskSnapshot{
		UserID:   "user-1",
		Tasks:    []domain.Task{{ID: "task-1", UserID: "user-1", Title: "Review PR"}},
		LoadedAt: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC),
	}

	repo := NewSnapshotRepository(4, time.Minute)

	_, found, err := repo.GetSnapshot(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SaveSnapshot(ctx, snapshot))
	got, found, err := repo.GetSnapshot(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, snapshot, got)

	got.Remove("task-1")
	again, _, _ := repo.GetSnapshot(ctx, "user-1")
	assert.Len(t, again.Tasks, 1, "mutating a returned snapshot must not change the stored one")

	require.NoError(t, repo.DeleteSnapshot(ctx, "user-1"))
	_, found, _ = repo.GetSnapshot(ctx, "user-1")
	assert.False(t, found)
}

func TestSnapshotRepository_Expiry(t *testing.T) {
	repo := NewSnapshotRepository(4, 20*time.Millisecond)
	require.NoError(t, repo.SaveSnapshot(context.Background(), domain.TaskSnapshot{UserID: "user-1"}))

	assert.Eventually(t, func() bool {
		_, found, _ := repo.GetSnapshot(context.Background(), "user-1")
		return !found
	}, time.Second, 10*time.Millisecond)
}

func TestInitSnapshotRepository_Initialize(t *testing.T) {
	_, err := InitSnapshotRepository{Size: 8, TTL: time.Minute}.Initialize(context.Background())
	require.NoError(t, err)

	repo, err := depend.Resolve[domain.TaskSnapshotRepository]()
	assert.NoError(t, err)
	assert.IsType(t, SnapshotRepository{}, repo)
}
