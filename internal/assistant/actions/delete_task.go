package actions

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
)

// TaskDeleterAction deletes one task by id.
type TaskDeleterAction struct {
	store domain.TaskStore
}

// NewTaskDeleterAction creates a new instance of TaskDeleterAction.
func NewTaskDeleterAction(store domain.TaskStore) TaskDeleterAction {
	return TaskDeleterAction{store: store}
}

// Declaration returns the tool declaration for TaskDeleterAction.
func (a TaskDeleterAction) Declaration() domain.ToolDeclaration {
	return domain.ToolDeclaration{
		Kind:        domain.ToolKind_DeleteTaskByID,
		Name:        domain.ToolName_DeleteTaskByID,
		Description: "Delete task id",
		Parameters: map[string]domain.ToolParameter{
			"taskId": {Type: "string"},
		},
		RequiredFields: []string{"taskId"},
	}
}

// CheckArguments rejects a call without a usable taskId.
func (a TaskDeleterAction) CheckArguments(_ string, call domain.ToolCallRequest) error {
	_, err := taskIDOf(call)
	return err
}

// Execute deletes the task named by the taskId argument.
func (a TaskDeleterAction) Execute(ctx context.Context, _ string, call domain.ToolCallRequest) (domain.ToolResult, error) {
	taskID, err := taskIDOf(call)
	if err != nil {
		return domain.ToolResult{}, err
	}

	if err := a.store.DeleteTask(ctx, taskID); err != nil {
		return domain.ToolResult{}, err
	}
	return domain.ToolResult{
		Kind:         domain.ToolKind_DeleteTaskByID,
		CallID:       call.ID,
		DeletedCount: 1,
	}, nil
}

func taskIDOf(call domain.ToolCallRequest) (string, error) {
	params := struct {
		TaskID string `json:"taskId"`
	}{}
	if err := decodeArguments(call, &params); err != nil {
		return "", err
	}
	if strings.TrimSpace(params.TaskID) == "" {
		return "", domain.NewInvalidArgumentsErr(call.Name, "taskId cannot be empty")
	}
	return params.TaskID, nil
}
