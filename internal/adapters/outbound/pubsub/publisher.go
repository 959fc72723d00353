package pubsub

import (
	"context"
	"fmt"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PubSubEventPublisher implements domain.EventPublisher using Google Cloud Pub/Sub
type PubSubEventPublisher struct {
	client *pubsubV2.Client
}

// NewPubSubEventPublisher creates a new instance of PubSubEventPublisher
func NewPubSubEventPublisher(client *pubsubV2.Client) PubSubEventPublisher {
	return PubSubEventPublisher{client: client}
}

// PublishEvent publishes the outbox event payload to the event's topic and
// waits for the broker acknowledgement.
func (p PubSubEventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("event_type", string(event.EventType)),
			attribute.String("topic", string(event.Topic)),
		),
	)
	defer span.End()

	result := p.client.Publisher(string(event.Topic)).Publish(spanCtx, &pubsubV2.Message{
		Data: event.Payload,
		Attributes: map[string]string{
			"event_id":    event.ID.String(),
			"event_type":  string(event.EventType),
			"entity_type": string(event.EntityType),
			"entity_id":   event.EntityID,
		},
	})

	_, err := result.Get(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// ensureTopic creates the topic when it does not exist yet.
func ensureTopic(ctx context.Context, client *pubsubV2.Client, topic domain.OutboxTopic) error {
	name := fmt.Sprintf("projects/%s/topics/%s", client.Project(), topic)
	_, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: name})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	return err
}

// InitPublisher initializes the domain.EventPublisher implementation
type InitPublisher struct {
	Client       *pubsubV2.Client `resolve:""`
	EnsureTopics bool             `config:"PUBSUB_ENSURE_TOPICS" default:"false"`
}

// Initialize registers the PubSubEventPublisher as the implementation of domain.EventPublisher
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	if i.EnsureTopics {
		if err := ensureTopic(ctx, i.Client, domain.OutboxTopic_Task); err != nil {
			return ctx, fmt.Errorf("failed to ensure topic %s: %w", domain.OutboxTopic_Task, err)
		}
	}
	depend.Register[domain.EventPublisher](NewPubSubEventPublisher(i.Client))
	return ctx, nil
}
