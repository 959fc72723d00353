package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/common"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ResetSession drops the conversation and the cached tasks of a user.
type ResetSession interface {
	Execute(ctx context.Context, userID string) error
}

// ResetSessionImpl is the implementation of ResetSession.
type ResetSessionImpl struct {
	sessions SessionStore
	cache    TaskCache
	locks    *common.KeyedMutex
}

// NewResetSessionImpl creates a new instance of ResetSessionImpl. locks must
// be the set used by ProcessPrompt.
func NewResetSessionImpl(sessions SessionStore, cache TaskCache, locks *common.KeyedMutex) ResetSessionImpl {
	return ResetSessionImpl{
		sessions: sessions,
		cache:    cache,
		locks:    locks,
	}
}

// Execute deletes the session and the snapshot of userID.
func (r ResetSessionImpl) Execute(ctx context.Context, userID string) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(userID) == "" {
		err := domain.NewValidationErr("userId cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	unlock := r.locks.Lock(userID)
	defer unlock()

	if err := r.sessions.Reset(spanCtx, userID); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if err := r.cache.Invalidate(spanCtx, userID); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitResetSession initializes the ResetSession use case.
type InitResetSession struct {
	Sessions SessionStore       `resolve:""`
	Cache    TaskCache          `resolve:""`
	Locks    *common.KeyedMutex `resolve:""`
}

// Initialize registers the ResetSession use case in the dependency container.
func (i InitResetSession) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ResetSession](NewResetSessionImpl(i.Sessions, i.Cache, i.Locks))
	return ctx, nil
}
