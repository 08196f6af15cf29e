package notifications

import (
	"context"

	"montecampo/pkg/kafka"
)

// EventPublisher is the slice of the Kafka producer the sink needs.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// KafkaSink publishes every event to the reservation events topic, keyed by
// reservation id so per-reservation ordering survives partitioning.
type KafkaSink struct {
	producer EventPublisher
}

func NewKafkaSink(producer EventPublisher) *KafkaSink {
	return &KafkaSink{producer: producer}
}

func (s *KafkaSink) Name() string { return "kafka" }

func (s *KafkaSink) Deliver(ctx context.Context, event Event) error {
	msg := kafka.NewMessage().
		WithKey(event.Reservation.ID).
		WithValue(event).
		WithEventType(string(event.Type)).
		WithSource("reservations").
		Build()

	return s.producer.Publish(ctx, msg)
}
