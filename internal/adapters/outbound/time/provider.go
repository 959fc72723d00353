package time

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider reads the wall clock in a fixed location. Relative
// task times ("tomorrow at 9") are resolved in that location.
type CurrentTimeProvider struct {
	loc *time.Location
}

// NewCurrentTimeProvider creates a CurrentTimeProvider for loc. A nil loc means UTC.
func NewCurrentTimeProvider(loc *time.Location) CurrentTimeProvider {
	if loc == nil {
		loc = time.UTC
	}
	return CurrentTimeProvider{loc: loc}
}

// Now returns the current time in the provider location.
func (p CurrentTimeProvider) Now() time.Time {
	return time.Now().In(p.loc)
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct {
	Timezone string `config:"AGENT_TIMEZONE" default:"UTC"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (i InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	loc, err := time.LoadLocation(i.Timezone)
	if err != nil {
		return ctx, fmt.Errorf("invalid AGENT_TIMEZONE %q: %w", i.Timezone, err)
	}
	depend.Register[domain.CurrentTimeProvider](NewCurrentTimeProvider(loc))
	return ctx, nil
}
