package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/common"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResetSessionImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		userID     string
		setupMocks func(*MockSessionStore, *MockTaskCache)
		expectErr  any
	}{
		"success": {
			userID: "u1",
			setupMocks: func(s *MockSessionStore, c *MockTaskCache) {
				s.EXPECT().Reset(mock.Anything, "u1").Return(nil).Once()
				c.EXPECT().Invalidate(mock.Anything, "u1").Return(nil).Once()
			},
		},
		"empty-user": {
			userID:     " ",
			setupMocks: func(*MockSessionStore, *MockTaskCache) {},
			expectErr:  &domain.ValidationErr{},
		},
		"session-error": {
			userID: "u1",
			setupMocks: func(s *MockSessionStore, _ *MockTaskCache) {
				s.EXPECT().Reset(mock.Anything, "u1").Return(assert.AnError).Once()
			},
			expectErr: assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sessions := NewMockSessionStore(t)
			cache := NewMockTaskCache(t)
			tt.setupMocks(sessions, cache)

			locks := common.NewKeyedMutex()
			err := NewResetSessionImpl(sessions, cache, locks).Execute(context.Background(), tt.userID)
			assert.Zero(t, locks.Len())
			if tt.expectErr == nil {
				assert.NoError(t, err)
				return
			}
			if tt.expectErr == assert.AnError {
				assert.ErrorIs(t, err, assert.AnError)
				return
			}
			assert.IsType(t, tt.expectErr, err)
		})
	}
}
