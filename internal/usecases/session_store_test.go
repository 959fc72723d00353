package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreImpl_GetOrCreate(t *testing.T) {
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	seedTasks := []domain.Task{{ID: "t1", UserID: "u1"}}
	existing := domain.ChatSession{UserID: "u1", CreatedAt: fixedTime.Add(-time.Hour)}
	seeded := domain.ChatSession{UserID: "u1", CreatedAt: fixedTime}

	tests := map[string]struct {
		setupMocks      func(*domain.MockChatSessionRepository, *MockChatModel)
		expected        domain.ChatSession
		expectedCreated bool
		expectErr       bool
	}{
		"existing-session-is-not-reseeded": {
			setupMocks: func(repo *domain.MockChatSessionRepository, _ *MockChatModel) {
				repo.EXPECT().GetSession(mock.Anything, "u1").Return(existing, true, nil).Once()
			},
			expected: existing,
		},
		"new-session-is-seeded": {
			setupMocks: func(repo *domain.MockChatSessionRepository, model *MockChatModel) {
				repo.EXPECT().GetSession(mock.Anything, "u1").Return(domain.ChatSession{}, false, nil).Once()
				model.EXPECT().StartSession("u1", seedTasks, fixedTime).Return(seeded, nil).Once()
			},
			expected:        seeded,
			expectedCreated: true,
		},
		"seed-error": {
			setupMocks: func(repo *domain.MockChatSessionRepository, model *MockChatModel) {
				repo.EXPECT().GetSession(mock.Anything, "u1").Return(domain.ChatSession{}, false, nil).Once()
				model.EXPECT().StartSession("u1", seedTasks, fixedTime).Return(domain.ChatSession{}, assert.AnError).Once()
			},
			expectErr: true,
		},
		"repository-error": {
			setupMocks: func(repo *domain.MockChatSessionRepository, _ *MockChatModel) {
				repo.EXPECT().GetSession(mock.Anything, "u1").Return(domain.ChatSession{}, false, assert.AnError).Once()
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockChatSessionRepository(t)
			model := NewMockChatModel(t)
			tt.setupMocks(repo, model)

			store := NewSessionStoreImpl(repo, model)
			got, created, err := store.GetOrCreate(context.Background(), "u1", seedTasks, fixedTime)
			if tt.expectErr {
				assert.ErrorIs(t, err, assert.AnError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expectedCreated, created)
		})
	}
}

func TestSessionStoreImpl_SaveAndReset(t *testing.T) {
	repo := domain.NewMockChatSessionRepository(t)
	session := domain.ChatSession{UserID: "u1"}
	repo.EXPECT().SaveSession(mock.Anything, session).Return(nil).Once()
	repo.EXPECT().DeleteSession(mock.Anything, "u1").Return(nil).Once()

	store := NewSessionStoreImpl(repo, NewMockChatModel(t))
	require.NoError(t, store.Save(context.Background(), session))
	require.NoError(t, store.Reset(context.Background(), "u1"))
}
