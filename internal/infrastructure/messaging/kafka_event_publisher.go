package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bibbank/onboarding/internal/domain/event"
	"github.com/bibbank/onboarding/pkg/kafka"
)

// KafkaEventPublisher implements port.EventPublisher on top of the shared
// Kafka producer. One event becomes one message, keyed by aggregate ID so a
// single application's events stay ordered within a partition.
type KafkaEventPublisher struct {
	producer *kafka.Producer
	topic    string
	logger   *slog.Logger
}

// NewKafkaEventPublisher creates a publisher targeting the given topic.
func NewKafkaEventPublisher(producer *kafka.Producer, topic string, logger *slog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish serialises and sends domain events.
func (p *KafkaEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type": evt.EventType(),
				"tenant_id":  evt.TenantID(),
			},
		})

		p.logger.Info("publishing domain event",
			slog.String("topic", p.topic),
			slog.String("event_type", evt.EventType()),
			slog.String("aggregate_id", evt.AggregateID()),
			slog.String("tenant_id", evt.TenantID()),
		)
	}

	if err := p.producer.Publish(ctx, p.topic, msgs...); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	return nil
}
