package actions

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
)

// TaskCreatorAction creates one task for the calling user.
type TaskCreatorAction struct {
	store        domain.TaskStore
	timeProvider domain.CurrentTimeProvider
}

// NewTaskCreatorAction creates a new instance of TaskCreatorAction.
func NewTaskCreatorAction(store domain.TaskStore, timeProvider domain.CurrentTimeProvider) TaskCreatorAction {
	return TaskCreatorAction{
		store:        store,
		timeProvider: timeProvider,
	}
}

// Declaration returns the tool declaration for TaskCreatorAction.
func (a TaskCreatorAction) Declaration() domain.ToolDeclaration {
	return domain.ToolDeclaration{
		Kind:        domain.ToolKind_CreateTask,
		Name:        domain.ToolName_CreateTask,
		Description: "Create a new task.",
		Parameters: map[string]domain.ToolParameter{
			"userId":      {Type: "string", Description: "The ID of the user creating the task."},
			"title":       {Type: "string", Description: "The title of the task."},
			"description": {Type: "string", Description: "A description of the task."},
			"status": {
				Type:        "string",
				Description: "The status of the task. enum(pending, in-progress, completed, expired)",
				Enum:        []string{"pending", "in-progress", "completed", "expired"},
			},
			"priority":                 {Type: "string", Description: "The priority of the task. enum(low, medium, high)"},
			"category":                 {Type: "string", Description: "The category of the task."},
			"startTime":                {Type: "string", Description: "The start time of the task."},
			"endTime":                  {Type: "string", Description: "The end time of the task."},
			"estimatedTime":            {Type: "integer", Description: "The estimated time to complete the task in minutes."},
			"pomodoro_required_number": {Type: "integer", Description: "The number of pomodoros required for the task."},
			"pomodoro_number":          {Type: "integer", Description: "The current pomodoro number."},
			"is_on_pomodoro_list":      {Type: "boolean", Description: "Whether the task is on the pomodoro list."},
			"style": {
				Type:        "object",
				Description: "Styling information for the task.",
				Properties: map[string]domain.ToolParameter{
					"backgroundColor": {Type: "string", Description: "The background color."},
					"textColor":       {Type: "string", Description: "The text color."},
				},
			},
		},
		RequiredFields: []string{"userId", "title", "status", "priority", "startTime", "endTime", "estimatedTime"},
	}
}

type createTaskParams struct {
	UserID                 string            `json:"userId"`
	Title                  string            `json:"title"`
	Description            string            `json:"description"`
	Status                 string            `json:"status"`
	Priority               string            `json:"priority"`
	Category               string            `json:"category"`
	StartTime              string            `json:"startTime"`
	EndTime                string            `json:"endTime"`
	EstimatedTime          int               `json:"estimatedTime"`
	PomodoroRequiredNumber *int              `json:"pomodoro_required_number"`
	PomodoroNumber         *int              `json:"pomodoro_number"`
	IsOnPomodoroList       *bool             `json:"is_on_pomodoro_list"`
	Style                  *domain.TaskStyle `json:"style"`
}

// CheckArguments decodes the call and resolves its start and end times.
func (a TaskCreatorAction) CheckArguments(userID string, call domain.ToolCallRequest) error {
	_, err := a.draftOf(userID, call)
	return err
}

// Execute creates the task described by the call. The task always belongs
// to userID, whatever the userId argument says.
func (a TaskCreatorAction) Execute(ctx context.Context, userID string, call domain.ToolCallRequest) (domain.ToolResult, error) {
	draft, err := a.draftOf(userID, call)
	if err != nil {
		return domain.ToolResult{}, err
	}

	task, err := a.store.CreateTask(ctx, draft)
	if err != nil {
		return domain.ToolResult{}, err
	}
	return domain.ToolResult{
		Kind:   domain.ToolKind_CreateTask,
		CallID: call.ID,
		Tasks:  []domain.Task{task},
	}, nil
}

func (a TaskCreatorAction) draftOf(userID string, call domain.ToolCallRequest) (domain.TaskDraft, error) {
	var params createTaskParams
	if err := decodeArguments(call, &params); err != nil {
		return domain.TaskDraft{}, err
	}
	return a.toDraft(userID, params)
}

func (a TaskCreatorAction) toDraft(userID string, params createTaskParams) (domain.TaskDraft, error) {
	now := a.timeProvider.Now()
	startTime, err := domain.ParseTaskTime(params.StartTime, now, now.Location())
	if err != nil {
		return domain.TaskDraft{}, domain.NewInvalidArgumentsErr(domain.ToolName_CreateTask, "startTime: "+err.Error())
	}
	endTime, err := domain.ParseTaskTime(params.EndTime, now, now.Location())
	if err != nil {
		return domain.TaskDraft{}, domain.NewInvalidArgumentsErr(domain.ToolName_CreateTask, "endTime: "+err.Error())
	}

	return domain.TaskDraft{
		UserID:                 userID,
		Title:                  params.Title,
		Description:            params.Description,
		Status:                 domain.TaskStatus(params.Status),
		Priority:               domain.TaskPriority(params.Priority),
		Category:               params.Category,
		StartTime:              startTime,
		EndTime:                endTime,
		EstimatedTime:          params.EstimatedTime,
		PomodoroRequiredNumber: params.PomodoroRequiredNumber,
		PomodoroNumber:         params.PomodoroNumber,
		IsOnPomodoroList:       params.IsOnPomodoroList,
		Style:                  params.Style,
	}, nil
}
