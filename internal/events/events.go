// Package events publishes enrollment changes to Kafka for downstream
// consumers. Events are advisory: the store remains authoritative and a
// failed publish never fails the originating request.
package events

import (
	"context"
	"time"
)

// Event types carried in the enrollment topic.
const (
	TypeSignedUp  = "enrollment.signed_up"
	TypeWithdrawn = "enrollment.withdrawn"
)

// EnrollmentChanged is the payload emitted after a successful signup or
// withdrawal.
type EnrollmentChanged struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	SpotsLeft  int       `json:"spots_left"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers enrollment events.
type Publisher interface {
	PublishEnrollmentChanged(ctx context.Context, event EnrollmentChanged) error
}

// NopPublisher discards events. Used when no brokers are configured.
type NopPublisher struct{}

// PublishEnrollmentChanged does nothing.
func (NopPublisher) PublishEnrollmentChanged(context.Context, EnrollmentChanged) error {
	return nil
}
