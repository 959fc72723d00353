package domain

import (
	"context"
	"time"
)

type EventType string

const (
	// EventType_TASK_CREATED represents the event when a task is created.
	EventType_TASK_CREATED EventType = "TASK.CREATED"
	// EventType_TASK_DELETED represents the event when a task is deleted.
	EventType_TASK_DELETED EventType = "TASK.DELETED"
	// EventType_TASK_PROGRESSED represents the event when a task's pomodoro counter advances.
	EventType_TASK_PROGRESSED EventType = "TASK.PROGRESSED"
)

// TaskEvent represents a task domain event.
type TaskEvent struct {
	Type      EventType `json:"type"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
