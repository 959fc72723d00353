package usecases

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/assistant"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/assistant/actions"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/common"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestProcessPromptImpl_Execute_DeleteBatchKeepsCacheInSync runs delete
// batches through the real dispatcher and task cache, so the cached
// snapshot can be compared with what reached the task store.
func TestProcessPromptImpl_Execute_DeleteBatchKeepsCacheInSync(t *testing.T) {
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		{ID: "t1", UserID: "u1", Title: "Write report", StartTime: fixedTime, EndTime: fixedTime.Add(time.Hour)},
		{ID: "t2", UserID: "u1", Title: "Review PR", StartTime: fixedTime, EndTime: fixedTime.Add(time.Hour)},
	}
	del := func(id, taskID string) domain.ToolCallRequest {
		return domain.ToolCallRequest{ID: id, Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{"taskId": taskID}}
	}

	tests := map[string]struct {
		calls         []domain.ToolCallRequest
		setupStore    func(store *domain.MockTaskStore)
		expectErr     any
		expected      string
		expectCached  bool
		expectedTasks []string
	}{
		"empty-task-id-rejected-before-any-delete": {
			calls:         []domain.ToolCallRequest{del("c1", "t1"), del("c2", "")},
			setupStore:    func(store *domain.MockTaskStore) {},
			expectErr:     &domain.InvalidArgumentsErr{},
			expectCached:  true,
			expectedTasks: []string{"t1", "t2"},
		},
		"failure-after-a-delete-landed-drops-snapshot": {
			calls: []domain.ToolCallRequest{del("c1", "t1"), del("c2", "t9")},
			setupStore: func(store *domain.MockTaskStore) {
				store.EXPECT().DeleteTask(mock.Anything, "t1").Return(nil).Once()
				store.EXPECT().DeleteTask(mock.Anything, "t9").Return(domain.NewNotFoundErr("task not found")).Once()
			},
			expected:     DeleteFailedText,
			expectCached: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := domain.NewMockTaskStore(t)
			store.EXPECT().FindTasksByUser(mock.Anything, "u1").Return(tasks, nil).Once()
			tt.setupStore(store)

			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

			snapshots := memory.NewSnapshotRepository(8, time.Hour)
			cache := NewTaskCacheImpl(snapshots, store, timeProvider, time.Second)

			dispatcher, err := assistant.NewToolDispatcher(1,
				actions.NewTaskFinderAction(store),
				actions.NewTaskDeleterAction(store),
				actions.NewTaskCreatorAction(store, timeProvider),
				actions.NewQuestionAnswererAction(),
			)
			require.NoError(t, err)

			sessions := NewMockSessionStore(t)
			sessions.EXPECT().GetOrCreate(mock.Anything, "u1", tasks, fixedTime).
				Return(domain.ChatSession{UserID: "u1"}, true, nil).Once()

			model := NewMockChatModel(t)
			model.EXPECT().Send(mock.Anything, mock.Anything, "", "delete them").
				RunAndReturn(replyWith(domain.AssistantTurnResponse{ToolCalls: tt.calls})).Once()

			uc := NewProcessPromptImpl(
				cache, sessions, model, dispatcher, timeProvider,
				common.NewKeyedMutex(), "premium", 2, time.Second,
				log.New(io.Discard, "", 0),
			)

			got, err := uc.Execute(context.Background(), domain.PromptRequest{
				Prompt: "delete them", UserID: "u1", UserRole: "premium",
			})
			if tt.expectErr != nil {
				require.Error(t, err)
				assert.IsType(t, tt.expectErr, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got.ResponseText)
			}

			snapshot, found, err := snapshots.GetSnapshot(context.Background(), "u1")
			require.NoError(t, err)
			assert.Equal(t, tt.expectCached, found)
			if tt.expectCached {
				ids := make([]string, 0, len(snapshot.Tasks))
				for _, task := range snapshot.Tasks {
					ids = append(ids, task.ID)
				}
				assert.Equal(t, tt.expectedTasks, ids)
			}
		})
	}
}
