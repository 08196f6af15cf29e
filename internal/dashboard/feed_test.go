package dashboard

import (
	"context"
	"testing"
	"time"

	"montecampo/internal/notifications"
	"montecampo/pkg/kafka"
	"montecampo/pkg/logger"
	"montecampo/pkg/model"
)

func eventMessage(t *testing.T, id string, eventType notifications.EventType) kafka.Message {
	t.Helper()

	return kafka.NewMessage().
		WithKey(id).
		WithValue(notifications.Event{
			Type: eventType,
			Reservation: model.Reservation{
				ID:     id,
				UnitID: "stardome-1",
			},
			Timestamp: time.Now(),
		}).
		WithEventType(string(eventType)).
		WithSource("reservations").
		Build()
}

func TestFeedRetainsMostRecent(t *testing.T) {
	feed := NewFeed(2, logger.Discard())

	for _, id := range []string{"RES1", "RES2", "RES3"} {
		msg := eventMessage(t, id, notifications.EventReservationCreated)
		if err := feed.Handle(context.Background(), msg); err != nil {
			t.Fatalf("Handle: %v", err)
		}
	}

	recent := feed.Recent()
	if len(recent) != 2 {
		t.Fatalf("retained %d events, want 2", len(recent))
	}
	if recent[0].Reservation.ID != "RES2" || recent[1].Reservation.ID != "RES3" {
		t.Errorf("retained [%s %s], want [RES2 RES3]",
			recent[0].Reservation.ID, recent[1].Reservation.ID)
	}
}

func TestFeedRejectsMalformedPayload(t *testing.T) {
	feed := NewFeed(10, logger.Discard())

	msg := kafka.Message{
		Key:     "RES1",
		Value:   []byte("not json"),
		Headers: map[string]string{},
	}

	if err := feed.Handle(context.Background(), msg); err == nil {
		t.Error("Handle(malformed) = nil, want error")
	}
	if len(feed.Recent()) != 0 {
		t.Error("malformed payload landed in the feed")
	}
}
