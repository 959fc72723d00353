package domain

import (
	"context"
	"slices"
	"time"
)

// ChatSession is the conversational state kept for one user.
type ChatSession struct {
	UserID     string
	Transcript []AssistantMessage
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Clone returns a copy whose transcript can be appended without touching s.
func (s ChatSession) Clone() ChatSession {
	s.Transcript = slices.Clone(s.Transcript)
	return s
}

// Append adds messages to the end of the transcript.
func (s *ChatSession) Append(msgs ...AssistantMessage) {
	s.Transcript = append(s.Transcript, msgs...)
}

// ChatSessionRepository stores chat sessions keyed by user id.
type ChatSessionRepository interface {
	// GetSession returns the session of the user, if any.
	GetSession(ctx context.Context, userID string) (ChatSession, bool, error)
	// SaveSession creates or replaces the session of session.UserID.
	SaveSession(ctx context.Context, session ChatSession) error
	// DeleteSession removes the session of the user.
	DeleteSession(ctx context.Context, userID string) error
}
