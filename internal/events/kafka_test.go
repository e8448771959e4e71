package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type stubWriter struct {
	messages []kafka.Message
	err      error
}

func (w *stubWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisherWritesKeyedMessage(t *testing.T) {
	writer := &stubWriter{}
	publisher := &KafkaPublisher{writer: writer}

	occurred := time.Date(2026, time.March, 2, 15, 30, 0, 0, time.UTC)
	err := publisher.PublishEnrollmentChanged(context.Background(), EnrollmentChanged{
		EventID:    "evt-1",
		EventType:  TypeSignedUp,
		Activity:   "Chess Club",
		Email:      "alice@mergington.edu",
		SpotsLeft:  11,
		OccurredAt: occurred,
	})
	require.NoError(t, err)

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	require.Equal(t, "Chess Club", string(msg.Key))
	require.Equal(t, occurred, msg.Time)
	require.Len(t, msg.Headers, 1)
	require.Equal(t, "event_type", msg.Headers[0].Key)
	require.Equal(t, TypeSignedUp, string(msg.Headers[0].Value))
	require.JSONEq(t, `{
		"event_id": "evt-1",
		"event_type": "enrollment.signed_up",
		"activity": "Chess Club",
		"email": "alice@mergington.edu",
		"spots_left": 11,
		"occurred_at": "2026-03-02T15:30:00Z"
	}`, string(msg.Value))
}

func TestKafkaPublisherPropagatesWriteError(t *testing.T) {
	writer := &stubWriter{err: errors.New("broker unavailable")}
	publisher := &KafkaPublisher{writer: writer}

	err := publisher.PublishEnrollmentChanged(context.Background(), EnrollmentChanged{
		EventType: TypeWithdrawn,
		Activity:  "Gym Class",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "broker unavailable")
}

func TestNopPublisher(t *testing.T) {
	require.NoError(t, NopPublisher{}.PublishEnrollmentChanged(context.Background(), EnrollmentChanged{}))
}
