package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// TaskStatus represents the lifecycle status of a task.
type TaskStatus string

const (
	TaskStatus_Pending    TaskStatus = "pending"
	TaskStatus_InProgress TaskStatus = "in-progress"
	TaskStatus_Completed  TaskStatus = "completed"
	TaskStatus_Expired    TaskStatus = "expired"
)

// TaskStatuses lists every valid TaskStatus in declaration order.
var TaskStatuses = []TaskStatus{TaskStatus_Pending, TaskStatus_InProgress, TaskStatus_Completed, TaskStatus_Expired}

// IsValid reports whether s is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// TaskPriority represents how urgent a task is.
type TaskPriority string

const (
	TaskPriority_Low    TaskPriority = "low"
	TaskPriority_Medium TaskPriority = "medium"
	TaskPriority_High   TaskPriority = "high"
)

// TaskPriorities lists every valid TaskPriority in declaration order.
var TaskPriorities = []TaskPriority{TaskPriority_Low, TaskPriority_Medium, TaskPriority_High}

// IsValid reports whether p is one of the known priorities.
func (p TaskPriority) IsValid() bool {
	for _, v := range TaskPriorities {
		if p == v {
			return true
		}
	}
	return false
}

const (
	DefaultTaskBackgroundColor    = "#ffffff"
	DefaultTaskTextColor          = "#000000"
	DefaultPomodoroRequiredNumber = 1
)

// TaskStyle holds the display colors of a task.
type TaskStyle struct {
	BackgroundColor string `json:"backgroundColor" toon:"backgroundColor"`
	TextColor       string `json:"textColor" toon:"textColor"`
}

// Task represents a user's task in the task store.
type Task struct {
	ID                     string
	UserID                 string
	Title                  string
	Description            string
	Status                 TaskStatus
	Priority               TaskPriority
	Category               string
	StartTime              time.Time
	EndTime                time.Time
	DueTime                *time.Time
	EstimatedTime          int
	PomodoroRequiredNumber int
	PomodoroNumber         int
	IsOnPomodoroList       bool
	Style                  TaskStyle
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Validate checks the task invariants.
func (t Task) Validate() error {
	if strings.TrimSpace(t.UserID) == "" {
		return NewValidationErr("userId cannot be empty")
	}
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationErr("title cannot be empty")
	}
	if len(t.Title) > 200 {
		return NewValidationErr("title must be at most 200 characters")
	}
	if !t.Status.IsValid() {
		return NewValidationErr("status must be one of pending, in-progress, completed, expired")
	}
	if !t.Priority.IsValid() {
		return NewValidationErr("priority must be one of low, medium, high")
	}
	if t.StartTime.IsZero() || t.EndTime.IsZero() {
		return NewValidationErr("startTime and endTime are required")
	}
	if t.EndTime.Before(t.StartTime) {
		return NewValidationErr("endTime cannot be before startTime")
	}
	if t.EstimatedTime < 0 {
		return NewValidationErr("estimatedTime cannot be negative")
	}
	if t.PomodoroRequiredNumber < 1 {
		return NewValidationErr("pomodoro_required_number must be at least 1")
	}
	if t.PomodoroNumber < 0 {
		return NewValidationErr("pomodoro_number cannot be negative")
	}
	return nil
}

// IncrementPomodoro advances the pomodoro counter and completes the task
// once the required number is reached.
func (t *Task) IncrementPomodoro(now time.Time) {
	t.PomodoroNumber++
	if t.PomodoroNumber >= t.PomodoroRequiredNumber {
		t.Status = TaskStatus_Completed
	}
	t.UpdatedAt = now
}

// ToLLMInput formats the task as a single line suitable for LLM input.
func (t Task) ToLLMInput() string {
	return fmt.Sprintf("ID: %s | Title: %s | Status: %s | Priority: %s | Start: %s | End: %s",
		t.ID, t.Title, t.Status, t.Priority,
		t.StartTime.Format(time.RFC3339), t.EndTime.Format(time.RFC3339),
	)
}

// TaskDraft carries the fields used to create a task. Nil optional fields
// take their defaults.
type TaskDraft struct {
	UserID                 string
	Title                  string
	Description            string
	Status                 TaskStatus
	Priority               TaskPriority
	Category               string
	StartTime              time.Time
	EndTime                time.Time
	DueTime                *time.Time
	EstimatedTime          int
	PomodoroRequiredNumber *int
	PomodoroNumber         *int
	IsOnPomodoroList       *bool
	Style                  *TaskStyle
}

// NewTask builds a Task from the draft, applying defaults.
func NewTask(id string, draft TaskDraft, now time.Time) Task {
	task := Task{
		ID:                     id,
		UserID:                 draft.UserID,
		Title:                  strings.TrimSpace(draft.Title),
		Description:            draft.Description,
		Status:                 draft.Status,
		Priority:               draft.Priority,
		Category:               draft.Category,
		StartTime:              draft.StartTime,
		EndTime:                draft.EndTime,
		DueTime:                draft.DueTime,
		EstimatedTime:          draft.EstimatedTime,
		PomodoroRequiredNumber: DefaultPomodoroRequiredNumber,
		Style: TaskStyle{
			BackgroundColor: DefaultTaskBackgroundColor,
			TextColor:       DefaultTaskTextColor,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if draft.PomodoroRequiredNumber != nil {
		task.PomodoroRequiredNumber = *draft.PomodoroRequiredNumber
	}
	if draft.PomodoroNumber != nil {
		task.PomodoroNumber = *draft.PomodoroNumber
	}
	if draft.IsOnPomodoroList != nil {
		task.IsOnPomodoroList = *draft.IsOnPomodoroList
	}
	if draft.Style != nil {
		if draft.Style.BackgroundColor != "" {
			task.Style.BackgroundColor = draft.Style.BackgroundColor
		}
		if draft.Style.TextColor != "" {
			task.Style.TextColor = draft.Style.TextColor
		}
	}
	return task
}

// TaskRepository defines the persistence operations over tasks.
type TaskRepository interface {
	// ListTasksByUser returns the user's tasks ordered by start time.
	ListTasksByUser(ctx context.Context, userID string) ([]Task, error)

	// GetTask retrieves a task by its identifier.
	GetTask(ctx context.Context, id string) (Task, bool, error)

	// CreateTask persists a new task.
	CreateTask(ctx context.Context, task Task) error

	// UpdateTask persists the mutable fields of an existing task.
	UpdateTask(ctx context.Context, task Task) error

	// DeleteTask removes a task by its identifier.
	DeleteTask(ctx context.Context, id string) error
}

// TaskStore is the narrow task-management surface consumed by the agent.
type TaskStore interface {
	FindTasksByUser(ctx context.Context, userID string) ([]Task, error)
	CreateTask(ctx context.Context, draft TaskDraft) (Task, error)
	DeleteTask(ctx context.Context, id string) error
	IncrementProgress(ctx context.Context, id string) (Task, error)
}
