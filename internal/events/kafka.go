package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher writes enrollment events to a single topic, keyed by
// activity name so all events for one activity land on one partition in
// order.
type KafkaPublisher struct {
	writer messageWriter
	closer func() error
}

// NewKafkaPublisher creates a KafkaPublisher against the given brokers.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	return &KafkaPublisher{writer: writer, closer: writer.Close}
}

// PublishEnrollmentChanged serializes and delivers one event.
func (p *KafkaPublisher) PublishEnrollmentChanged(ctx context.Context, event EnrollmentChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal enrollment event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Activity),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish enrollment event: %w", err)
	}
	return nil
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}
