package time

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCurrentTimeProvider_Initialize(t *testing.T) {
	tests := map[string]struct {
		timezone  string
		expectErr bool
	}{
		"utc":          {timezone: "UTC"},
		"named-zone":   {timezone: "America/Sao_Paulo"},
		"unknown-zone": {timezone: "Mars/Olympus", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i := InitCurrentTimeProvider{Timezone: tt.timezone}
			_, err := i.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			p, err := depend.Resolve[domain.CurrentTimeProvider]()
			require.NoError(t, err)
			assert.Equal(t, tt.timezone, p.Now().Location().String())
		})
	}
}

func TestCurrentTimeProvider_Now(t *testing.T) {
	p := NewCurrentTimeProvider(nil)
	now := p.Now()
	assert.WithinDuration(t, time.Now(), now, time.Second)
	assert.Equal(t, time.UTC, now.Location())
}
