package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/common"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/trace"
)

// AdvancePomodoro counts one finished pomodoro on a task owned by the user.
type AdvancePomodoro interface {
	Execute(ctx context.Context, userID, taskID string) (domain.Task, error)
}

// AdvancePomodoroImpl is the implementation of AdvancePomodoro.
type AdvancePomodoroImpl struct {
	cache        TaskCache
	store        domain.TaskStore
	locks        *common.KeyedMutex
	storeTimeout time.Duration
}

// NewAdvancePomodoroImpl creates a new instance of AdvancePomodoroImpl.
func NewAdvancePomodoroImpl(cache TaskCache, store domain.TaskStore, locks *common.KeyedMutex, storeTimeout time.Duration) AdvancePomodoroImpl {
	return AdvancePomodoroImpl{
		cache:        cache,
		store:        store,
		locks:        locks,
		storeTimeout: storeTimeout,
	}
}

// Execute increments the pomodoro counter of taskID. The task must belong to
// the user's snapshot; the refreshed task replaces the cached copy.
func (a AdvancePomodoroImpl) Execute(ctx context.Context, userID, taskID string) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.UserID(userID),
		telemetry.TaskID(taskID),
	))
	defer span.End()

	if strings.TrimSpace(userID) == "" || strings.TrimSpace(taskID) == "" {
		err := domain.NewValidationErr("userId and taskId are required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Task{}, err
	}

	unlock := a.locks.Lock(userID)
	defer unlock()

	snapshot, err := a.cache.Get(spanCtx, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}
	if _, ok := snapshot.Find(taskID); !ok {
		err := domain.NewNotFoundErr(fmt.Sprintf("task with ID %s not found", taskID))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Task{}, err
	}

	storeCtx := spanCtx
	if a.storeTimeout > 0 {
		var cancel context.CancelFunc
		storeCtx, cancel = context.WithTimeout(spanCtx, a.storeTimeout)
		defer cancel()
	}

	task, err := a.store.IncrementProgress(storeCtx, taskID)
	if err != nil {
		err = toUpstreamErr(upstreamTaskStore, err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Task{}, err
	}

	if err := a.cache.ApplyUpdated(spanCtx, userID, task); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}
	return task, nil
}

// InitAdvancePomodoro initializes the AdvancePomodoro use case.
type InitAdvancePomodoro struct {
	Cache        TaskCache          `resolve:""`
	Store        domain.TaskStore   `resolve:""`
	Locks        *common.KeyedMutex `resolve:""`
	StoreTimeout time.Duration      `config:"STORE_TIMEOUT" default:"10s"`
}

// Initialize registers the AdvancePomodoro use case in the dependency container.
func (i InitAdvancePomodoro) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AdvancePomodoro](NewAdvancePomodoroImpl(i.Cache, i.Store, i.Locks, i.StoreTimeout))
	return ctx, nil
}
