package actions

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTaskFinderAction(t *testing.T) {
	tests := map[string]struct {
		call       domain.ToolCallRequest
		setupMocks func(*domain.MockTaskStore)
		expectErr  bool
		validate   func(t *testing.T, res domain.ToolResult)
	}{
		"scopes-lookup-to-caller": {
			call: domain.ToolCallRequest{ID: "c1", Name: domain.ToolName_FindAllTasksByUserID, Arguments: map[string]any{"userId": "someone-else"}},
			setupMocks: func(store *domain.MockTaskStore) {
				store.EXPECT().FindTasksByUser(mock.Anything, "u1").
					Return([]domain.Task{{ID: "t1"}, {ID: "t2"}}, nil).
					Once()
			},
			validate: func(t *testing.T, res domain.ToolResult) {
				assert.Equal(t, domain.ToolKind_FindAllTasksByUserID, res.Kind)
				assert.Equal(t, "c1", res.CallID)
				assert.Len(t, res.Tasks, 2)
			},
		},
		"store-error": {
			call: domain.ToolCallRequest{Name: domain.ToolName_FindAllTasksByUserID, Arguments: map[string]any{"userId": "u1"}},
			setupMocks: func(store *domain.MockTaskStore) {
				store.EXPECT().FindTasksByUser(mock.Anything, "u1").Return(nil, assert.AnError).Once()
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := domain.NewMockTaskStore(t)
			tt.setupMocks(store)

			res, err := NewTaskFinderAction(store).Execute(context.Background(), "u1", tt.call)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, res)
		})
	}
}

func TestTaskDeleterAction(t *testing.T) {
	tests := map[string]struct {
		call       domain.ToolCallRequest
		setupMocks func(*domain.MockTaskStore)
		expectErr  any
	}{
		"deletes-task": {
			call: domain.ToolCallRequest{ID: "c1", Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{"taskId": "t1"}},
			setupMocks: func(store *domain.MockTaskStore) {
				store.EXPECT().DeleteTask(mock.Anything, "t1").Return(nil).Once()
			},
		},
		"raw-arguments": {
			call: domain.ToolCallRequest{ID: "c1", Name: domain.ToolName_DeleteTaskByID, RawArguments: `{"taskId":"t9"}`},
			setupMocks: func(store *domain.MockTaskStore) {
				store.EXPECT().DeleteTask(mock.Anything, "t9").Return(nil).Once()
			},
		},
		"empty-task-id": {
			call:       domain.ToolCallRequest{Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{"taskId": ""}},
			setupMocks: func(store *domain.MockTaskStore) {},
			expectErr:  &domain.InvalidArgumentsErr{},
		},
		"wrong-argument-type": {
			call:       domain.ToolCallRequest{Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{"taskId": 42}},
			setupMocks: func(store *domain.MockTaskStore) {},
			expectErr:  &domain.InvalidArgumentsErr{},
		},
		"task-not-found": {
			call: domain.ToolCallRequest{Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{"taskId": "t1"}},
			setupMocks: func(store *domain.MockTaskStore) {
				store.EXPECT().DeleteTask(mock.Anything, "t1").Return(domain.NewNotFoundErr("task t1 not found")).Once()
			},
			expectErr: &domain.NotFoundErr{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := domain.NewMockTaskStore(t)
			tt.setupMocks(store)

			res, err := NewTaskDeleterAction(store).Execute(context.Background(), "u1", tt.call)
			if tt.expectErr != nil {
				require.Error(t, err)
				assert.IsType(t, tt.expectErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, res.DeletedCount)
			assert.Equal(t, domain.ToolKind_DeleteTaskByID, res.Kind)
		})
	}
}

func TestCheckArguments(t *testing.T) {
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	createArgs := func(start string) map[string]any {
		return map[string]any{
			"userId": "u1", "title": "Review PR", "status": "pending", "priority": "high",
			"startTime": start, "endTime": "2026-01-25T10:30:00Z", "estimatedTime": float64(30),
		}
	}

	tests := map[string]struct {
		checker   domain.ToolArgumentsChecker
		call      domain.ToolCallRequest
		expectErr bool
	}{
		"delete-valid": {
			checker: TaskDeleterAction{},
			call:    domain.ToolCallRequest{Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{"taskId": "t1"}},
		},
		"delete-blank-task-id": {
			checker:   TaskDeleterAction{},
			call:      domain.ToolCallRequest{Name: domain.ToolName_DeleteTaskByID, Arguments: map[string]any{"taskId": "  "}},
			expectErr: true,
		},
		"create-valid": {
			call: domain.ToolCallRequest{Name: domain.ToolName_CreateTask, Arguments: createArgs("tomorrow at 9")},
		},
		"create-unreadable-start-time": {
			call:      domain.ToolCallRequest{Name: domain.ToolName_CreateTask, Arguments: createArgs("whenever")},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			checker := tt.checker
			if checker == nil {
				timeProvider := domain.NewMockCurrentTimeProvider(t)
				timeProvider.EXPECT().Now().Return(fixedTime).Once()
				checker = NewTaskCreatorAction(domain.NewMockTaskStore(t), timeProvider)
			}

			err := checker.CheckArguments("u1", tt.call)
			if tt.expectErr {
				assert.IsType(t, &domain.InvalidArgumentsErr{}, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTaskCreatorAction(t *testing.T) {
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	baseArgs := func() map[string]any {
		return map[string]any{
			"userId":        "attacker",
			"title":         "Review PR",
			"status":        "pending",
			"priority":      "high",
			"startTime":     "tomorrow at 9",
			"endTime":       "2026-01-25T10:30:00Z",
			"estimatedTime": float64(90),
		}
	}

	tests := map[string]struct {
		args       func() map[string]any
		setupMocks func(*domain.MockTaskStore)
		expectErr  any
	}{
		"creates-task-for-caller": {
			args: baseArgs,
			setupMocks: func(store *domain.MockTaskStore) {
				store.EXPECT().CreateTask(mock.Anything, mock.MatchedBy(func(d domain.TaskDraft) bool {
					return d.UserID == "u1" &&
						d.Title == "Review PR" &&
						d.Status == domain.TaskStatus_Pending &&
						d.Priority == domain.TaskPriority_High &&
						d.StartTime.Equal(time.Date(2026, 1, 25, 9, 0, 0, 0, time.UTC)) &&
						d.EndTime.Equal(time.Date(2026, 1, 25, 10, 30, 0, 0, time.UTC)) &&
						d.EstimatedTime == 90 &&
						d.PomodoroRequiredNumber == nil &&
						d.Style == nil
				})).
					Return(domain.Task{ID: "t9", UserID: "u1", Title: "Review PR"}, nil).
					Once()
			},
		},
		"forwards-optional-fields": {
			args: func() map[string]any {
				args := baseArgs()
				args["category"] = "work"
				args["pomodoro_required_number"] = float64(3)
				args["is_on_pomodoro_list"] = true
				args["style"] = map[string]any{"backgroundColor": "#ff0000"}
				return args
			},
			setupMocks: func(store *domain.MockTaskStore) {
				store.EXPECT().CreateTask(mock.Anything, mock.MatchedBy(func(d domain.TaskDraft) bool {
					return d.Category == "work" &&
						d.PomodoroRequiredNumber != nil && *d.PomodoroRequiredNumber == 3 &&
						d.IsOnPomodoroList != nil && *d.IsOnPomodoroList &&
						d.Style != nil && d.Style.BackgroundColor == "#ff0000"
				})).
					Return(domain.Task{ID: "t9"}, nil).
					Once()
			},
		},
		"unparseable-start-time": {
			args: func() map[string]any {
				args := baseArgs()
				args["startTime"] = "whenever"
				return args
			},
			setupMocks: func(store *domain.MockTaskStore) {},
			expectErr:  &domain.InvalidArgumentsErr{},
		},
		"store-validation-error": {
			args: baseArgs,
			setupMocks: func(store *domain.MockTaskStore) {
				store.EXPECT().CreateTask(mock.Anything, mock.Anything).
					Return(domain.Task{}, domain.NewValidationErr("title cannot be empty")).
					Once()
			},
			expectErr: &domain.ValidationErr{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := domain.NewMockTaskStore(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
			tt.setupMocks(store)

			call := domain.ToolCallRequest{ID: "c1", Name: domain.ToolName_CreateTask, Arguments: tt.args()}
			res, err := NewTaskCreatorAction(store, timeProvider).Execute(context.Background(), "u1", call)
			if tt.expectErr != nil {
				require.Error(t, err)
				assert.IsType(t, tt.expectErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.ToolKind_CreateTask, res.Kind)
			assert.Len(t, res.Tasks, 1)
		})
	}
}

func TestQuestionAnswererAction(t *testing.T) {
	tests := map[string]struct {
		args     map[string]any
		expected string
	}{
		"returns-response": {
			args:     map[string]any{"response": "You have 2 tasks today."},
			expected: "You have 2 tasks today.",
		},
		"missing-response-falls-back": {
			args:     map[string]any{},
			expected: "I can't answer your question.",
		},
		"blank-response-falls-back": {
			args:     map[string]any{"response": "   "},
			expected: "I can't answer your question.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			call := domain.ToolCallRequest{Name: domain.ToolName_AnswerUserQuestion, Arguments: tt.args}
			res, err := NewQuestionAnswererAction().Execute(context.Background(), "u1", call)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.Text)
		})
	}
}

func TestUnmarshalActionInput(t *testing.T) {
	var target struct {
		ID string `json:"id"`
	}
	assert.NoError(t, unmarshalActionInput(`{"id":"t1"}`, &target))
	assert.Equal(t, "t1", target.ID)
	assert.Error(t, unmarshalActionInput(`{"id":"t1","extra":1}`, &target))
	assert.Error(t, unmarshalActionInput(`{"id":"t1"} {"id":"t2"}`, &target))
	assert.Error(t, unmarshalActionInput(`not json`, &target))
}
