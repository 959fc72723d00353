package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/usecases"
)

// MessageRelay is a runnable that periodically publishes pending task events
// from the outbox.
type MessageRelay struct {
	RelayOutbox         usecases.RelayOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	workerExecutionChan chan struct{}
}

// Run relays one outbox batch per tick until ctx is done.
func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Println("MessageRelay: running...")
	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := mr.RelayOutbox.Execute(ctx); err != nil {
				mr.Logger.Printf("MessageRelay: failed to relay outbox batch: %v", err)
			}
			if mr.workerExecutionChan != nil {
				mr.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			mr.Logger.Println("MessageRelay: stopping...")
			return nil
		}
	}
}
