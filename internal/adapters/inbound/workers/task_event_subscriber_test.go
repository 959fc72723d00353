package workers

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTaskEventSubscriber_Run(t *testing.T) {
	created := domain.TaskEvent{Type: domain.EventType_TASK_CREATED, TaskID: "t1", UserID: "u1"}
	deleted := domain.TaskEvent{Type: domain.EventType_TASK_DELETED, TaskID: "t2", UserID: "u2"}

	tests := map[string]struct {
		payloads   func(t *testing.T) [][]byte
		batchSize  int
		interval   time.Duration
		setupMocks func(*usecases.MockSyncTaskEvents)
		batches    int
	}{
		"flushes-on-batch-size": {
			payloads: func(t *testing.T) [][]byte {
				return [][]byte{taskEventPayload(t, created), taskEventPayload(t, deleted)}
			},
			batchSize: 2,
			interval:  time.Minute,
			setupMocks: func(m *usecases.MockSyncTaskEvents) {
				m.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(events []domain.TaskEvent) bool {
					return assert.ObjectsAreEqual([]domain.TaskEvent{created, deleted}, events) ||
						assert.ObjectsAreEqual([]domain.TaskEvent{deleted, created}, events)
				})).Return(nil).Once()
			},
			batches: 1,
		},
		"drops-malformed-payloads": {
			payloads: func(t *testing.T) [][]byte {
				return [][]byte{[]byte("not json")}
			},
			batchSize: 10,
			interval:  20 * time.Millisecond,
			setupMocks: func(m *usecases.MockSyncTaskEvents) {
				m.EXPECT().Execute(mock.Anything, []domain.TaskEvent{}).Return(nil).Once()
			},
			batches: 1,
		},
		"sync-error-nacks": {
			payloads: func(t *testing.T) [][]byte {
				return [][]byte{taskEventPayload(t, created)}
			},
			batchSize: 10,
			interval:  20 * time.Millisecond,
			setupMocks: func(m *usecases.MockSyncTaskEvents) {
				m.EXPECT().Execute(mock.Anything, []domain.TaskEvent{created}).Return(assert.AnError).Once()
				// redelivery after the nack
				m.EXPECT().Execute(mock.Anything, mock.Anything).Return(nil).Maybe()
			},
			batches: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, client, topicName := setupPubSubServer(t, ctx, "Task", "task-events-sub")

			sync := usecases.NewMockSyncTaskEvents(t)
			tt.setupMocks(sync)

			signalChan := make(chan struct{}, 10)
			subscriber := TaskEventSubscriber{
				Logger:              log.Default(),
				Client:              client,
				SyncTaskEvents:      sync,
				Interval:            tt.interval,
				BatchSize:           tt.batchSize,
				SubscriptionID:      "task-events-sub",
				workerExecutionChan: signalChan,
			}

			cancel, doneChan := run(t, ctx, subscriber)

			require.NoError(t, publishMessages(ctx, client, topicName, tt.payloads(t)))
			waitForBatchSignals(t, signalChan, tt.batches, 3*time.Second)

			cancel()
			waitRunnableStop(t, doneChan)
		})
	}
}

func TestTaskEventSubscriber_AcksMalformedWhenSyncFails(t *testing.T) {
	ctx := context.Background()
	server, client, topicName := setupPubSubServer(t, ctx, "Task", "task-events-sub")
	created := domain.TaskEvent{Type: domain.EventType_TASK_CREATED, TaskID: "t1", UserID: "u1"}

	sync := usecases.NewMockSyncTaskEvents(t)
	sync.EXPECT().Execute(mock.Anything, []domain.TaskEvent{created}).Return(assert.AnError).Once()
	// redelivery of the nacked event
	sync.EXPECT().Execute(mock.Anything, mock.Anything).Return(nil).Maybe()

	signalChan := make(chan struct{}, 10)
	subscriber := TaskEventSubscriber{
		Logger:              log.Default(),
		Client:              client,
		SyncTaskEvents:      sync,
		Interval:            time.Minute,
		BatchSize:           2,
		SubscriptionID:      "task-events-sub",
		workerExecutionChan: signalChan,
	}

	cancel, doneChan := run(t, ctx, subscriber)

	require.NoError(t, publishMessages(ctx, client, topicName, [][]byte{
		[]byte("not json"),
		taskEventPayload(t, created),
	}))
	waitForBatchSignals(t, signalChan, 1, 3*time.Second)

	assert.Eventually(t, func() bool {
		for _, msg := range server.Messages() {
			if string(msg.Data) == "not json" {
				return msg.Acks > 0
			}
		}
		return false
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	waitRunnableStop(t, doneChan)
}

func TestTaskEventSubscriber_Disabled(t *testing.T) {
	subscriber := TaskEventSubscriber{
		Logger:         log.Default(),
		SubscriptionID: "-",
	}

	cancel, doneChan := run(t, context.Background(), subscriber)
	cancel()
	waitRunnableStop(t, doneChan)
}
