package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Topic carries all order lifecycle events, keyed by order code so one
// order's events stay ordered within a partition.
const Topic = "storefront.orders"

const producerName = "storefront"

// Publisher emits order lifecycle events for downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload OrderEvent) error
	Close() error
}

// KafkaPublisher implements Publisher using kafka-go.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher builds a publisher for the given brokers.
func NewKafkaPublisher(brokers []string, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaPublisher{writer: writer, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, payload OrderEvent) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	envelope := Envelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     producerName,
		Payload:      raw,
	}
	value, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(payload.OrderCode),
		Value: value,
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(eventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish event failed",
			slog.String("type", eventType),
			slog.String("order", payload.OrderCode),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, OrderEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
