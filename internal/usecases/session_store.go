package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// SessionStore owns the chat session of each user.
type SessionStore interface {
	// GetOrCreate returns the session of userID. When none exists a new one
	// is seeded with seedTasks and seedTime and created is true. New
	// sessions are persisted by Save.
	GetOrCreate(ctx context.Context, userID string, seedTasks []domain.Task, seedTime time.Time) (session domain.ChatSession, created bool, err error)
	// Save writes the session back.
	Save(ctx context.Context, session domain.ChatSession) error
	// Reset drops the session of userID.
	Reset(ctx context.Context, userID string) error
}

// SessionStoreImpl is the implementation of SessionStore.
type SessionStoreImpl struct {
	sessions domain.ChatSessionRepository
	model    ChatModel
}

// NewSessionStoreImpl creates a new instance of SessionStoreImpl.
func NewSessionStoreImpl(sessions domain.ChatSessionRepository, model ChatModel) SessionStoreImpl {
	return SessionStoreImpl{
		sessions: sessions,
		model:    model,
	}
}

// GetOrCreate returns the existing session unchanged, or seeds a new one.
func (s SessionStoreImpl) GetOrCreate(ctx context.Context, userID string, seedTasks []domain.Task, seedTime time.Time) (domain.ChatSession, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	session, found, err := s.sessions.GetSession(spanCtx, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ChatSession{}, false, err
	}
	RecordCacheLookup(spanCtx, "sessions", found)
	if found {
		return session, false, nil
	}

	session, err = s.model.StartSession(userID, seedTasks, seedTime)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ChatSession{}, false, err
	}
	return session, true, nil
}

// Save writes the session back to the repository.
func (s SessionStoreImpl) Save(ctx context.Context, session domain.ChatSession) error {
	return s.sessions.SaveSession(ctx, session)
}

// Reset drops the session of userID.
func (s SessionStoreImpl) Reset(ctx context.Context, userID string) error {
	return s.sessions.DeleteSession(ctx, userID)
}

// InitSessionStore initializes the SessionStore.
type InitSessionStore struct {
	Sessions domain.ChatSessionRepository `resolve:""`
	Model    ChatModel                    `resolve:""`
}

// Initialize registers the SessionStore in the dependency container.
func (i InitSessionStore) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SessionStore](NewSessionStoreImpl(i.Sessions, i.Model))
	return ctx, nil
}
