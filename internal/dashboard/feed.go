// Package dashboard consumes the reservation event stream and keeps a
// bounded in-memory activity feed for the back-office view.
package dashboard

import (
	"context"
	"fmt"
	"sync"

	"montecampo/internal/notifications"
	"montecampo/pkg/kafka"
	"montecampo/pkg/logger"
)

type Feed struct {
	log *logger.Logger

	mu     sync.RWMutex
	recent []notifications.Event
	max    int
}

func NewFeed(max int, log *logger.Logger) *Feed {
	if max < 1 {
		max = 1
	}
	return &Feed{log: log, max: max}
}

// Handle is the consumer callback. A payload that does not decode is a
// permanent failure: returning the error routes the message to the DLQ
// after retries instead of wedging the partition.
func (f *Feed) Handle(_ context.Context, msg kafka.Message) error {
	var event notifications.Event
	if err := msg.DecodeValue(&event); err != nil {
		return fmt.Errorf("decoding reservation event %s: %w", msg.GetEventID(), err)
	}

	f.mu.Lock()
	f.recent = append(f.recent, event)
	if len(f.recent) > f.max {
		f.recent = f.recent[len(f.recent)-f.max:]
	}
	f.mu.Unlock()

	r := event.Reservation
	switch event.Type {
	case notifications.EventReservationCreated:
		f.log.Info("dashboard: reservation created",
			"reservation_id", r.ID,
			"unit", r.UnitName,
			"check_in", r.DateRange.CheckIn.Format("2006-01-02"),
			"check_out", r.DateRange.CheckOut.Format("2006-01-02"),
			"total_price", r.TotalPrice,
		)
	case notifications.EventReservationCancelled:
		f.log.Info("dashboard: reservation cancelled",
			"reservation_id", r.ID,
			"refund_tier", string(event.RefundTier),
			"refund_amount", event.RefundAmount,
		)
	default:
		f.log.Warn("dashboard: unknown event type",
			"event_type", string(event.Type),
			"reservation_id", r.ID,
		)
	}

	return nil
}

// Recent returns the retained events, oldest first.
func (f *Feed) Recent() []notifications.Event {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]notifications.Event, len(f.recent))
	copy(out, f.recent)
	return out
}
