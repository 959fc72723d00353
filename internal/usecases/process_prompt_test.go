package usecases

import (
	"context"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/common"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type processPromptMocks struct {
	cache        *MockTaskCache
	sessions     *MockSessionStore
	model        *MockChatModel
	dispatcher   *domain.MockToolDispatcher
	timeProvider *domain.MockCurrentTimeProvider
}

func newProcessPromptMocks(t *testing.T) processPromptMocks {
	return processPromptMocks{
		cache:        NewMockTaskCache(t),
		sessions:     NewMockSessionStore(t),
		model:        NewMockChatModel(t),
		dispatcher:   domain.NewMockToolDispatcher(t),
		timeProvider: domain.NewMockCurrentTimeProvider(t),
	}
}

// replyWith simulates the model appending the user turn and its reply.
func replyWith(resp domain.AssistantTurnResponse) func(context.Context, *domain.ChatSession, string, string) (domain.AssistantTurnResponse, error) {
	return func(_ context.Context, s *domain.ChatSession, _ string, text string) (domain.AssistantTurnResponse, error) {
		s.Append(
			domain.AssistantMessage{Role: domain.ChatRole_User, Content: text},
			domain.AssistantMessage{Role: domain.ChatRole_Assistant, Content: resp.Content, ToolCalls: resp.ToolCalls},
		)
		return resp, nil
	}
}

func submitWith(resp domain.AssistantTurnResponse) func(context.Context, *domain.ChatSession, string) (domain.AssistantTurnResponse, error) {
	return func(_ context.Context, s *domain.ChatSession, _ string) (domain.AssistantTurnResponse, error) {
		s.Append(domain.AssistantMessage{Role: domain.ChatRole_Assistant, Content: resp.Content, ToolCalls: resp.ToolCalls})
		return resp, nil
	}
}

func lastContent(s domain.ChatSession) string {
	if len(s.Transcript) == 0 {
		return ""
	}
	return s.Transcript[len(s.Transcript)-1].Content
}

func TestProcessPromptImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	existing := domain.Task{
		ID:        "t1",
		UserID:    "u1",
		Title:     "Write report",
		Status:    domain.TaskStatus_Pending,
		Priority:  domain.TaskPriority_Medium,
		StartTime: fixedTime,
		EndTime:   fixedTime.Add(time.Hour),
	}
	created := domain.Task{
		ID:        "t2",
		UserID:    "u1",
		Title:     "Review PR",
		Status:    domain.TaskStatus_Pending,
		Priority:  domain.TaskPriority_High,
		StartTime: fixedTime,
		EndTime:   fixedTime.Add(time.Hour),
	}
	snapshot := domain.TaskSnapshot{UserID: "u1", Tasks: []domain.Task{existing}, LoadedAt: fixedTime}
	session := domain.ChatSession{
		UserID:     "u1",
		Transcript: []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "seed"}},
		CreatedAt:  fixedTime,
	}
	premium := domain.PromptRequest{Prompt: "delete my first task", UserID: "u1", UserRole: "premium"}

	deleteCall := domain.ToolCallRequest{ID: "c1", Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{"taskId": "t1"}}
	createCall := domain.ToolCallRequest{ID: "c2", Name: domain.ToolName_CreateTask, Arguments: map[string]any{"title": "Review PR"}}
	findCall := domain.ToolCallRequest{ID: "c3", Name: domain.ToolName_FindAllTasksByUserID, Arguments: map[string]any{"userId": "u1"}}
	answerCall := domain.ToolCallRequest{ID: "c4", Name: domain.ToolName_AnswerUserQuestion, Arguments: map[string]any{"response": "You have 1 task"}}

	resolved := func(m processPromptMocks) {
		m.cache.EXPECT().Get(mock.Anything, "u1").Return(snapshot, nil).Once()
		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		m.sessions.EXPECT().GetOrCreate(mock.Anything, "u1", snapshot.Tasks, fixedTime).Return(session, false, nil).Once()
	}

	tests := map[string]struct {
		req             domain.PromptRequest
		maxLookupRounds int
		setupMocks      func(processPromptMocks)
		expected        string
		expectErr       any
	}{
		"unauthorized-role": {
			req:        domain.PromptRequest{Prompt: "hi", UserID: "u1", UserRole: "free"},
			setupMocks: func(processPromptMocks) {},
			expectErr:  &domain.UnauthorizedErr{},
		},
		"empty-role": {
			req:        domain.PromptRequest{Prompt: "hi", UserID: "u1"},
			setupMocks: func(processPromptMocks) {},
			expectErr:  &domain.UnauthorizedErr{},
		},
		"empty-prompt": {
			req:        domain.PromptRequest{Prompt: "  ", UserID: "u1", UserRole: "premium"},
			setupMocks: func(processPromptMocks) {},
			expectErr:  &domain.ValidationErr{},
		},
		"plain-answer": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{Content: "Hello there"})).Once()
				m.sessions.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expected: "Hello there",
		},
		"empty-reply": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{Content: "  "})).Once()
				m.sessions.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expected: NoResponseText,
		},
		"delete-one-task": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{ToolCalls: []domain.ToolCallRequest{deleteCall}})).Once()
				m.dispatcher.EXPECT().DispatchBatch(mock.Anything, "u1", []domain.ToolCallRequest{deleteCall}).
					Return([]domain.ToolResult{{Kind: domain.ToolKind_DeleteTaskByID, CallID: "c1", DeletedCount: 1}}, nil).Once()
				m.cache.EXPECT().ApplyDeleted(mock.Anything, "u1", []string{"t1"}).Return(nil).Once()
				m.sessions.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s domain.ChatSession) bool {
					n := len(s.Transcript)
					return n == 5 &&
						s.Transcript[n-2].Role == domain.ChatRole_Tool &&
						*s.Transcript[n-2].ToolCallID == "c1" &&
						lastContent(s) == "You have deleted 1 tasks"
				})).Return(nil).Once()
			},
			expected: "I deleted 1 tasks",
		},
		"delete-batch": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				second := domain.ToolCallRequest{ID: "c5", Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{"taskId": "t9"}}
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{ToolCalls: []domain.ToolCallRequest{deleteCall, second}})).Once()
				m.dispatcher.EXPECT().DispatchBatch(mock.Anything, "u1", []domain.ToolCallRequest{deleteCall, second}).
					Return([]domain.ToolResult{
						{Kind: domain.ToolKind_DeleteTaskByID, CallID: "c1", DeletedCount: 1},
						{Kind: domain.ToolKind_DeleteTaskByID, CallID: "c5", DeletedCount: 1},
					}, nil).Once()
				m.cache.EXPECT().ApplyDeleted(mock.Anything, "u1", []string{"t1", "t9"}).Return(nil).Once()
				m.sessions.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expected: "I deleted 2 tasks",
		},
		"create-one-task": {
			req: domain.PromptRequest{Prompt: "add a task called Review PR", UserID: "u1", UserRole: "premium", PreferredModel: "gpt-x"},
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "gpt-x", "add a task called Review PR").
					RunAndReturn(replyWith(domain.AssistantTurnResponse{ToolCalls: []domain.ToolCallRequest{createCall}})).Once()
				m.dispatcher.EXPECT().DispatchBatch(mock.Anything, "u1", []domain.ToolCallRequest{createCall}).
					Return([]domain.ToolResult{{Kind: domain.ToolKind_CreateTask, CallID: "c2", Tasks: []domain.Task{created}}}, nil).Once()
				m.cache.EXPECT().ApplyCreated(mock.Anything, "u1", []domain.Task{created}).Return(nil).Once()
				m.sessions.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s domain.ChatSession) bool {
					c := lastContent(s)
					return len(c) > len(createdNotePrefix) && c[:len(createdNotePrefix)] == createdNotePrefix
				})).Return(nil).Once()
			},
			expected: "I have created 1 tasks",
		},
		"delete-store-failure": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{ToolCalls: []domain.ToolCallRequest{deleteCall}})).Once()
				m.dispatcher.EXPECT().DispatchBatch(mock.Anything, "u1", mock.Anything).
					Return(nil, domain.NewNotFoundErr("task not found")).Once()
				m.cache.EXPECT().Invalidate(mock.Anything, "u1").Return(nil).Once()
			},
			expected: DeleteFailedText,
		},
		"create-store-failure": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{ToolCalls: []domain.ToolCallRequest{createCall}})).Once()
				m.dispatcher.EXPECT().DispatchBatch(mock.Anything, "u1", mock.Anything).
					Return(nil, assert.AnError).Once()
				m.cache.EXPECT().Invalidate(mock.Anything, "u1").Return(nil).Once()
			},
			expected: CreateFailedText,
		},
		"create-invalid-arguments": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{ToolCalls: []domain.ToolCallRequest{createCall}})).Once()
				m.dispatcher.EXPECT().DispatchBatch(mock.Anything, "u1", mock.Anything).
					Return(nil, domain.NewInvalidArgumentsErr(domain.ToolName_CreateTask, "missing required field status")).Once()
			},
			expectErr: &domain.InvalidArgumentsErr{},
		},
		"create-invalid-arguments-after-execution-started": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{ToolCalls: []domain.ToolCallRequest{createCall, createCall}})).Once()
				m.dispatcher.EXPECT().DispatchBatch(mock.Anything, "u1", mock.Anything).
					Return(nil, domain.NewToolExecutionErr(domain.ToolName_CreateTask,
						domain.NewInvalidArgumentsErr(domain.ToolName_CreateTask, "endTime: unreadable"))).Once()
				m.cache.EXPECT().Invalidate(mock.Anything, "u1").Return(nil).Once()
			},
			expected: CreateFailedText,
		},
		"unexpected-function-call": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{ToolCalls: []domain.ToolCallRequest{{ID: "x", Name: "dropAllTables"}}})).Once()
			},
			expectErr: &domain.UnexpectedFunctionCallErr{},
		},
		"heterogeneous-batch": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{ToolCalls: []domain.ToolCallRequest{createCall, deleteCall}})).Once()
			},
			expectErr: &domain.UnexpectedFunctionCallErr{},
		},
		"answer-tool": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{ToolCalls: []domain.ToolCallRequest{answerCall}})).Once()
				m.dispatcher.EXPECT().DispatchBatch(mock.Anything, "u1", []domain.ToolCallRequest{answerCall}).
					Return([]domain.ToolResult{{Kind: domain.ToolKind_AnswerUserQuestion, CallID: "c4", Text: "You have 1 task"}}, nil).Once()
				m.sessions.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s domain.ChatSession) bool {
					return lastContent(s) == "You have 1 task"
				})).Return(nil).Once()
			},
			expected: "You have 1 task",
		},
		"lookup-then-answer": {
			req:             premium,
			maxLookupRounds: 2,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{ToolCalls: []domain.ToolCallRequest{findCall}})).Once()
				m.dispatcher.EXPECT().DispatchBatch(mock.Anything, "u1", []domain.ToolCallRequest{findCall}).
					Return([]domain.ToolResult{{Kind: domain.ToolKind_FindAllTasksByUserID, CallID: "c3", Tasks: []domain.Task{existing}}}, nil).Once()
				m.model.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(s *domain.ChatSession) bool {
					last := s.Transcript[len(s.Transcript)-1]
					return last.Role == domain.ChatRole_Tool && last.ToolName == domain.ToolName_FindAllTasksByUserID
				}), "").RunAndReturn(submitWith(domain.AssistantTurnResponse{Content: "Your first task is Write report"})).Once()
				m.sessions.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expected: "Your first task is Write report",
		},
		"lookup-rounds-exhausted": {
			req:             premium,
			maxLookupRounds: 1,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{ToolCalls: []domain.ToolCallRequest{findCall}})).Once()
				m.dispatcher.EXPECT().DispatchBatch(mock.Anything, "u1", mock.Anything).
					Return([]domain.ToolResult{{Kind: domain.ToolKind_FindAllTasksByUserID, CallID: "c3"}}, nil).Once()
				m.model.EXPECT().Submit(mock.Anything, mock.Anything, "").
					RunAndReturn(submitWith(domain.AssistantTurnResponse{ToolCalls: []domain.ToolCallRequest{findCall}})).Once()
			},
			expected: NoResponseText,
		},
		"task-cache-error": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				m.cache.EXPECT().Get(mock.Anything, "u1").Return(domain.TaskSnapshot{}, domain.NewUpstreamErr("task store", assert.AnError)).Once()
			},
			expectErr: &domain.UpstreamErr{},
		},
		"model-error": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					Return(domain.AssistantTurnResponse{}, domain.NewUpstreamErr("model", assert.AnError)).Once()
			},
			expectErr: &domain.UpstreamErr{},
		},
		"save-error": {
			req: premium,
			setupMocks: func(m processPromptMocks) {
				resolved(m)
				m.model.EXPECT().Send(mock.Anything, mock.Anything, "", premium.Prompt).
					RunAndReturn(replyWith(domain.AssistantTurnResponse{Content: "ok"})).Once()
				m.sessions.EXPECT().Save(mock.Anything, mock.Anything).Return(assert.AnError).Once()
			},
			expectErr: assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newProcessPromptMocks(t)
			tt.setupMocks(m)

			uc := NewProcessPromptImpl(
				m.cache, m.sessions, m.model, m.dispatcher, m.timeProvider,
				common.NewKeyedMutex(), "premium", tt.maxLookupRounds, time.Second,
				log.New(io.Discard, "", 0),
			)

			got, err := uc.Execute(context.Background(), tt.req)
			if tt.expectErr != nil {
				require.Error(t, err)
				if tt.expectErr == assert.AnError {
					assert.ErrorIs(t, err, assert.AnError)
				} else {
					assert.IsType(t, tt.expectErr, err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.ResponseText)
		})
	}
}

func TestProcessPromptImpl_Execute_UnauthorizedMessage(t *testing.T) {
	m := newProcessPromptMocks(t)
	uc := NewProcessPromptImpl(m.cache, m.sessions, m.model, m.dispatcher, m.timeProvider,
		common.NewKeyedMutex(), "premium", 2, time.Second, log.New(io.Discard, "", 0))

	_, err := uc.Execute(context.Background(), domain.PromptRequest{Prompt: "hi", UserID: "u1", UserRole: "basic"})
	require.Error(t, err)
	assert.Equal(t, "Please upgrade to premium to use this feature", err.Error())
}

func TestProcessPromptImpl_Execute_SerializesPerUser(t *testing.T) {
	m := newProcessPromptMocks(t)
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)

	var inFlight, maxInFlight atomic.Int32
	m.cache.EXPECT().Get(mock.Anything, "u1").RunAndReturn(func(context.Context, string) (domain.TaskSnapshot, error) {
		n := inFlight.Add(1)
		for {
			current := maxInFlight.Load()
			if n <= current || maxInFlight.CompareAndSwap(current, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		return domain.TaskSnapshot{UserID: "u1"}, nil
	}).Times(3)
	m.timeProvider.EXPECT().Now().Return(fixedTime).Times(3)
	m.sessions.EXPECT().GetOrCreate(mock.Anything, "u1", mock.Anything, fixedTime).
		Return(domain.ChatSession{UserID: "u1"}, false, nil).Times(3)
	m.model.EXPECT().Send(mock.Anything, mock.Anything, "", "hi").
		RunAndReturn(replyWith(domain.AssistantTurnResponse{Content: "hello"})).Times(3)
	m.sessions.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, domain.ChatSession) error {
		inFlight.Add(-1)
		return nil
	}).Times(3)

	uc := NewProcessPromptImpl(m.cache, m.sessions, m.model, m.dispatcher, m.timeProvider,
		common.NewKeyedMutex(), "premium", 2, time.Second, log.New(io.Discard, "", 0))

	var wg sync.WaitGroup
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), domain.PromptRequest{Prompt: "hi", UserID: "u1", UserRole: "premium"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestBatchKind(t *testing.T) {
	tests := map[string]struct {
		calls     []domain.ToolCallRequest
		expected  domain.ToolKind
		expectErr string
	}{
		"homogeneous": {
			calls:    []domain.ToolCallRequest{{Name: "deleteTaskById"}, {Name: "deleteTaskById"}},
			expected: domain.ToolKind_DeleteTaskByID,
		},
		"unrecognized-first": {
			calls:     []domain.ToolCallRequest{{Name: "rm"}, {Name: "deleteTaskById"}},
			expectErr: "Unexpected function call: rm",
		},
		"mixed": {
			calls:     []domain.ToolCallRequest{{Name: "createTask"}, {Name: "deleteTaskById"}},
			expectErr: "Unexpected function call: deleteTaskById in a batch of createTask",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := batchKind(tt.calls)
			if tt.expectErr != "" {
				assert.EqualError(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitProcessPrompt_Initialize(t *testing.T) {
	i := InitProcessPrompt{Locks: common.NewKeyedMutex(), PrivilegedRole: "premium", MaxLookupRounds: 2}
	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	r, err := depend.Resolve[ProcessPrompt]()
	require.NoError(t, err)
	assert.NotNil(t, r)
}
