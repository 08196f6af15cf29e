// Package notifications fans reservation events out to delivery sinks
// (guest email, admin messages, the dashboard feed, Kafka) without blocking
// the booking path.
package notifications

import (
	"context"
	"time"

	"montecampo/pkg/model"
)

type EventType string

const (
	EventReservationCreated   EventType = "reservation_created"
	EventReservationCancelled EventType = "reservation_cancelled"
)

// Event is the unit of fan-out. RefundTier and RefundAmount are only set on
// cancellation events.
type Event struct {
	Type         EventType         `json:"type"`
	Reservation  model.Reservation `json:"reservation"`
	RefundTier   model.RefundTier  `json:"refund_tier,omitempty"`
	RefundAmount float64           `json:"refund_amount,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
}

// Sink delivers one event to one destination. Deliveries are best-effort: a
// returned error is logged and the event is not retried.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, event Event) error
}
