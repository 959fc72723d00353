package usecases

import (
	"context"
	"log"
	"slices"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/common"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SyncTaskEvents drops the cached snapshots touched by task events published
// by any replica, so the next turn reloads them from the task store.
type SyncTaskEvents interface {
	Execute(ctx context.Context, events []domain.TaskEvent) error
}

// SyncTaskEventsImpl is the implementation of SyncTaskEvents.
type SyncTaskEventsImpl struct {
	cache  TaskCache
	locks  *common.KeyedMutex
	logger *log.Logger
}

// NewSyncTaskEventsImpl creates a new instance of SyncTaskEventsImpl.
func NewSyncTaskEventsImpl(cache TaskCache, locks *common.KeyedMutex, logger *log.Logger) SyncTaskEventsImpl {
	return SyncTaskEventsImpl{
		cache:  cache,
		locks:  locks,
		logger: logger,
	}
}

// Execute invalidates the snapshot of every user named by events, once per user.
func (s SyncTaskEventsImpl) Execute(ctx context.Context, events []domain.TaskEvent) error {
	users := make([]string, 0, len(events))
	for _, e := range events {
		if e.UserID != "" && !slices.Contains(users, e.UserID) {
			users = append(users, e.UserID)
		}
	}

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("events", len(events)),
		attribute.Int("users", len(users)),
	))
	defer span.End()

	for _, userID := range users {
		if err := s.invalidate(spanCtx, userID); telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
	}
	if len(users) > 0 {
		s.logger.Printf("SyncTaskEvents: invalidated %d task snapshots", len(users))
	}
	return nil
}

func (s SyncTaskEventsImpl) invalidate(ctx context.Context, userID string) error {
	unlock := s.locks.Lock(userID)
	defer unlock()
	return s.cache.Invalidate(ctx, userID)
}

// InitSyncTaskEvents initializes the SyncTaskEvents use case.
type InitSyncTaskEvents struct {
	Cache  TaskCache          `resolve:""`
	Locks  *common.KeyedMutex `resolve:""`
	Logger *log.Logger        `resolve:""`
}

// Initialize registers the SyncTaskEvents use case in the dependency container.
func (i InitSyncTaskEvents) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SyncTaskEvents](NewSyncTaskEventsImpl(i.Cache, i.Locks, i.Logger))
	return ctx, nil
}
