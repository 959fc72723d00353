package assistant

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/assistant/actions"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherMocks struct {
	finder   *domain.MockToolHandler
	deleter  *domain.MockToolHandler
	creator  *domain.MockToolHandler
	answerer *domain.MockToolHandler
}

func newTestDispatcher(t *testing.T, concurrency int) (ToolDispatcher, dispatcherMocks) {
	t.Helper()
	m := dispatcherMocks{
		finder:   domain.NewMockToolHandler(t),
		deleter:  domain.NewMockToolHandler(t),
		creator:  domain.NewMockToolHandler(t),
		answerer: domain.NewMockToolHandler(t),
	}
	m.finder.EXPECT().Declaration().Return(actions.TaskFinderAction{}.Declaration())
	m.deleter.EXPECT().Declaration().Return(actions.TaskDeleterAction{}.Declaration())
	m.creator.EXPECT().Declaration().Return(actions.TaskCreatorAction{}.Declaration())
	m.answerer.EXPECT().Declaration().Return(actions.QuestionAnswererAction{}.Declaration())

	d, err := NewToolDispatcher(concurrency, m.finder, m.deleter, m.creator, m.answerer)
	require.NoError(t, err)
	return d, m
}

func deleteCall(id string) domain.ToolCallRequest {
	return domain.ToolCallRequest{ID: "call-" + id, Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{"taskId": id}}
}

func TestToolDispatcher_Dispatch(t *testing.T) {
	tests := map[string]struct {
		call       domain.ToolCallRequest
		setupMocks func(m dispatcherMocks)
		expected   domain.ToolResult
		expectErr  any
	}{
		"routes-delete": {
			call: deleteCall("t1"),
			setupMocks: func(m dispatcherMocks) {
				m.deleter.EXPECT().Execute(mock.Anything, "u1", deleteCall("t1")).
					Return(domain.ToolResult{Kind: domain.ToolKind_DeleteTaskByID, CallID: "call-t1", DeletedCount: 1}, nil).
					Once()
			},
			expected: domain.ToolResult{Kind: domain.ToolKind_DeleteTaskByID, CallID: "call-t1", DeletedCount: 1},
		},
		"routes-answer": {
			call: domain.ToolCallRequest{Name: domain.ToolName_AnswerUserQuestion, Arguments: map[string]any{"response": "hi"}},
			setupMocks: func(m dispatcherMocks) {
				m.answerer.EXPECT().Execute(mock.Anything, "u1", mock.Anything).
					Return(domain.ToolResult{Kind: domain.ToolKind_AnswerUserQuestion, Text: "hi"}, nil).
					Once()
			},
			expected: domain.ToolResult{Kind: domain.ToolKind_AnswerUserQuestion, Text: "hi"},
		},
		"unknown-tool-never-reaches-handlers": {
			call:       domain.ToolCallRequest{Name: "dropDatabase"},
			setupMocks: func(m dispatcherMocks) {},
			expectErr:  &domain.UnknownToolErr{},
		},
		"invalid-arguments-never-reach-handlers": {
			call:       domain.ToolCallRequest{Name: domain.ToolName_DeleteTaskByID},
			setupMocks: func(m dispatcherMocks) {},
			expectErr:  &domain.InvalidArgumentsErr{},
		},
		"handler-error": {
			call: deleteCall("t1"),
			setupMocks: func(m dispatcherMocks) {
				m.deleter.EXPECT().Execute(mock.Anything, "u1", mock.Anything).
					Return(domain.ToolResult{}, domain.NewNotFoundErr("task not found")).
					Once()
			},
			expectErr: &domain.NotFoundErr{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, m := newTestDispatcher(t, 2)
			tt.setupMocks(m)

			got, err := d.Dispatch(context.Background(), "u1", tt.call)
			if tt.expectErr != nil {
				require.Error(t, err)
				assert.IsType(t, tt.expectErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToolDispatcher_DispatchBatch(t *testing.T) {
	t.Run("keeps-call-order", func(t *testing.T) {
		d, m := newTestDispatcher(t, 4)
		m.deleter.EXPECT().Execute(mock.Anything, "u1", mock.Anything).
			RunAndReturn(func(ctx context.Context, userID string, call domain.ToolCallRequest) (domain.ToolResult, error) {
				if call.ID == "call-t1" {
					time.Sleep(10 * time.Millisecond)
				}
				return domain.ToolResult{Kind: domain.ToolKind_DeleteTaskByID, CallID: call.ID, DeletedCount: 1}, nil
			}).
			Times(3)

		results, err := d.DispatchBatch(context.Background(), "u1", []domain.ToolCallRequest{
			deleteCall("t1"), deleteCall("t2"), deleteCall("t3"),
		})
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "call-t1", results[0].CallID)
		assert.Equal(t, "call-t2", results[1].CallID)
		assert.Equal(t, "call-t3", results[2].CallID)
	})

	t.Run("validates-all-calls-before-executing", func(t *testing.T) {
		d, _ := newTestDispatcher(t, 4)

		_, err := d.DispatchBatch(context.Background(), "u1", []domain.ToolCallRequest{
			deleteCall("t1"),
			{Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{}},
		})
		require.Error(t, err)
		assert.IsType(t, &domain.InvalidArgumentsErr{}, err)
	})

	t.Run("fails-when-any-call-fails", func(t *testing.T) {
		d, m := newTestDispatcher(t, 4)
		m.deleter.EXPECT().Execute(mock.Anything, "u1", mock.Anything).
			RunAndReturn(func(ctx context.Context, userID string, call domain.ToolCallRequest) (domain.ToolResult, error) {
				if call.ID == "call-t2" {
					return domain.ToolResult{}, assert.AnError
				}
				return domain.ToolResult{DeletedCount: 1}, nil
			}).
			Maybe()

		results, err := d.DispatchBatch(context.Background(), "u1", []domain.ToolCallRequest{
			deleteCall("t1"), deleteCall("t2"), deleteCall("t3"),
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.IsType(t, &domain.ToolExecutionErr{}, err)
		assert.Nil(t, results)
	})

	t.Run("checks-handler-arguments-before-executing", func(t *testing.T) {
		store := domain.NewMockTaskStore(t)
		d, err := NewToolDispatcher(1,
			actions.NewTaskFinderAction(store),
			actions.NewTaskDeleterAction(store),
			actions.NewTaskCreatorAction(store, domain.NewMockCurrentTimeProvider(t)),
			actions.NewQuestionAnswererAction(),
		)
		require.NoError(t, err)

		_, err = d.DispatchBatch(context.Background(), "u1", []domain.ToolCallRequest{
			deleteCall("t1"), deleteCall(""),
		})
		require.Error(t, err)
		assert.IsType(t, &domain.InvalidArgumentsErr{}, err)
		store.AssertNotCalled(t, "DeleteTask", mock.Anything, mock.Anything)
	})

	t.Run("bounds-concurrency", func(t *testing.T) {
		d, m := newTestDispatcher(t, 2)
		var running, peak atomic.Int32
		m.deleter.EXPECT().Execute(mock.Anything, "u1", mock.Anything).
			RunAndReturn(func(ctx context.Context, userID string, call domain.ToolCallRequest) (domain.ToolResult, error) {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				running.Add(-1)
				return domain.ToolResult{DeletedCount: 1}, nil
			}).
			Times(6)

		calls := []domain.ToolCallRequest{
			deleteCall("t1"), deleteCall("t2"), deleteCall("t3"),
			deleteCall("t4"), deleteCall("t5"), deleteCall("t6"),
		}
		_, err := d.DispatchBatch(context.Background(), "u1", calls)
		require.NoError(t, err)
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})
}

func TestInitToolDispatcher_Initialize(t *testing.T) {
	i := InitToolDispatcher{
		TaskStore:    domain.NewMockTaskStore(t),
		TimeProvider: domain.NewMockCurrentTimeProvider(t),
		Concurrency:  4,
	}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	dispatcher, err := depend.Resolve[domain.ToolDispatcher]()
	require.NoError(t, err)
	assert.Len(t, dispatcher.Declarations(), 4)
}
