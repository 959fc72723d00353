package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// TaskStoreImpl implements domain.TaskStore over the unit of work. Every
// mutation records a task event in the outbox within the same transaction.
type TaskStoreImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	newID        func() string
}

// NewTaskStoreImpl creates a new instance of TaskStoreImpl.
func NewTaskStoreImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) TaskStoreImpl {
	return TaskStoreImpl{
		uow:          uow,
		timeProvider: timeProvider,
		newID:        uuid.NewString,
	}
}

// FindTasksByUser returns the tasks owned by userID.
func (s TaskStoreImpl) FindTasksByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	tasks, err := s.uow.Task().ListTasksByUser(spanCtx, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return tasks, nil
}

// CreateTask validates the draft and persists the new task.
func (s TaskStoreImpl) CreateTask(ctx context.Context, draft domain.TaskDraft) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := s.timeProvider.Now()
	task := domain.NewTask(s.newID(), draft, now)
	if err := task.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	err := s.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Task().CreateTask(spanCtx, task); err != nil {
			return err
		}
		return uow.Outbox().CreateTaskEvent(spanCtx, domain.TaskEvent{
			Type:      domain.EventType_TASK_CREATED,
			TaskID:    task.ID,
			UserID:    task.UserID,
			CreatedAt: now,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}
	return task, nil
}

// DeleteTask removes a task by id.
func (s TaskStoreImpl) DeleteTask(ctx context.Context, id string) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := s.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		task, found, err := uow.Task().GetTask(spanCtx, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.NewNotFoundErr(fmt.Sprintf("task with ID %s not found", id))
		}
		if err := uow.Task().DeleteTask(spanCtx, id); err != nil {
			return err
		}
		return uow.Outbox().CreateTaskEvent(spanCtx, domain.TaskEvent{
			Type:      domain.EventType_TASK_DELETED,
			TaskID:    id,
			UserID:    task.UserID,
			CreatedAt: s.timeProvider.Now(),
		})
	})
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// IncrementProgress advances the pomodoro counter of a task.
func (s TaskStoreImpl) IncrementProgress(ctx context.Context, id string) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var updated domain.Task
	err := s.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		task, found, err := uow.Task().GetTask(spanCtx, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.NewNotFoundErr(fmt.Sprintf("task with ID %s not found", id))
		}

		now := s.timeProvider.Now()
		task.IncrementPomodoro(now)
		if err := uow.Task().UpdateTask(spanCtx, task); err != nil {
			return err
		}
		updated = task
		return uow.Outbox().CreateTaskEvent(spanCtx, domain.TaskEvent{
			Type:      domain.EventType_TASK_PROGRESSED,
			TaskID:    id,
			UserID:    task.UserID,
			CreatedAt: now,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}
	return updated, nil
}

// InitTaskStore initializes the task store.
type InitTaskStore struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the TaskStore in the dependency container.
func (i InitTaskStore) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TaskStore](NewTaskStoreImpl(i.Uow, i.TimeProvider))
	return ctx, nil
}
