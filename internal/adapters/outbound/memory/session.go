package memory

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SessionRepository keeps chat sessions in a bounded LRU. An entry expires once
// it has not been saved for the configured idle TTL.
type SessionRepository struct {
	lru *expirable.LRU[string, domain.ChatSession]
}

// NewSessionRepository creates a SessionRepository holding at most size sessions.
func NewSessionRepository(size int, idleTTL time.Duration) SessionRepository {
	return SessionRepository{
		lru: expirable.NewLRU[string, domain.ChatSession](size, nil, idleTTL),
	}
}

// GetSession returns a copy of the user's session.
func (r SessionRepository) GetSession(_ context.Context, userID string) (domain.ChatSession, bool, error) {
	session, ok := r.lru.Get(userID)
	if !ok {
		return domain.ChatSession{}, false, nil
	}
	return session.Clone(), true, nil
}

// SaveSession stores a copy of session and restarts its idle timer.
func (r SessionRepository) SaveSession(_ context.Context, session domain.ChatSession) error {
	r.lru.Add(session.UserID, session.Clone())
	return nil
}

// DeleteSession drops the user's session.
func (r SessionRepository) DeleteSession(_ context.Context, userID string) error {
	r.lru.Remove(userID)
	return nil
}

// InitSessionRepository registers the in-memory domain.ChatSessionRepository.
type InitSessionRepository struct {
	Size    int           `config:"SESSION_CACHE_SIZE" default:"1024"`
	IdleTTL time.Duration `config:"SESSION_IDLE_TTL" default:"30m"`
}

// Initialize registers the SessionRepository in the dependency container.
func (i InitSessionRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ChatSessionRepository](NewSessionRepository(i.Size, i.IdleTTL))
	return ctx, nil
}
