package workers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/usecases"
)

// TaskEventSubscriber consumes task events from Pub/Sub and drops the task
// snapshots they touch. With SubscriptionID "-" the worker stays idle.
type TaskEventSubscriber struct {
	Logger              *log.Logger             `resolve:""`
	Client              *pubsub.Client          `resolve:""`
	SyncTaskEvents      usecases.SyncTaskEvents `resolve:""`
	Interval            time.Duration           `config:"TASK_EVENTS_BATCH_INTERVAL" default:"1s"`
	BatchSize           int                     `config:"TASK_EVENTS_BATCH_SIZE" default:"50"`
	SubscriptionID      string                  `config:"TASK_EVENTS_SUBSCRIPTION_ID" default:"-"`
	workerExecutionChan chan struct{}
}

// Run starts the subscriber worker.
func (s TaskEventSubscriber) Run(ctx context.Context) error {
	if s.SubscriptionID == "-" {
		s.Logger.Println("TaskEventSubscriber: disabled")
		<-ctx.Done()
		return nil
	}
	s.Logger.Println("TaskEventSubscriber: running...")

	msgCh := make(chan *pubsub.Message, s.BatchSize*2)
	receiveErrCh := make(chan error, 1)

	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case msgCh <- msg:
			case <-ctx.Done():
				msg.Nack()
			}
		})
		if err != nil {
			receiveErrCh <- err
		}
	}()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			for _, msg := range batch {
				msg.Nack()
			}
			s.Logger.Println("TaskEventSubscriber: stopping...")
			return nil

		case err := <-receiveErrCh:
			return err

		case msg := <-msgCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

// flush syncs the decodable messages of batch. Malformed messages are acked
// right away; the rest are acked or nacked together.
func (s TaskEventSubscriber) flush(ctx context.Context, batch []*pubsub.Message) {
	events := make([]domain.TaskEvent, 0, len(batch))
	pending := make([]*pubsub.Message, 0, len(batch))
	for _, msg := range batch {
		var event domain.TaskEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			s.Logger.Printf("TaskEventSubscriber: dropping malformed message %s: %v", msg.ID, err)
			msg.Ack()
			continue
		}
		events = append(events, event)
		pending = append(pending, msg)
	}

	err := s.SyncTaskEvents.Execute(ctx, events)
	if s.workerExecutionChan != nil {
		s.workerExecutionChan <- struct{}{}
	}
	if err != nil {
		s.Logger.Printf("TaskEventSubscriber: failed to sync batch size=%d: %v", len(pending), err)
		for _, msg := range pending {
			msg.Nack()
		}
		return
	}

	for _, msg := range pending {
		msg.Ack()
	}
}
