package actions

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
)

// TaskFinderAction looks up the tasks of the calling user.
type TaskFinderAction struct {
	store domain.TaskStore
}

// NewTaskFinderAction creates a new instance of TaskFinderAction.
func NewTaskFinderAction(store domain.TaskStore) TaskFinderAction {
	return TaskFinderAction{store: store}
}

// Declaration returns the tool declaration for TaskFinderAction.
func (a TaskFinderAction) Declaration() domain.ToolDeclaration {
	return domain.ToolDeclaration{
		Kind:        domain.ToolKind_FindAllTasksByUserID,
		Name:        domain.ToolName_FindAllTasksByUserID,
		Description: "Find all tasks by userId",
		Parameters: map[string]domain.ToolParameter{
			"userId": {Type: "string", Description: "userId to get tasks"},
		},
		RequiredFields: []string{"userId"},
	}
}

// Execute returns the tasks of userID. The userId argument is ignored so a
// call can never read another user's tasks.
func (a TaskFinderAction) Execute(ctx context.Context, userID string, call domain.ToolCallRequest) (domain.ToolResult, error) {
	params := struct {
		UserID string `json:"userId"`
	}{}
	if err := decodeArguments(call, &params); err != nil {
		return domain.ToolResult{}, err
	}

	tasks, err := a.store.FindTasksByUser(ctx, userID)
	if err != nil {
		return domain.ToolResult{}, err
	}
	return domain.ToolResult{
		Kind:   domain.ToolKind_FindAllTasksByUserID,
		CallID: call.ID,
		Tasks:  tasks,
	}, nil
}
