package notifications

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"montecampo/pkg/logger"
	"montecampo/pkg/model"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Deliver(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

type failingSink struct {
	calls atomic.Int32
}

func (s *failingSink) Name() string { return "failing" }

func (s *failingSink) Deliver(context.Context, Event) error {
	s.calls.Add(1)
	return errors.New("provider unavailable")
}

type panickingSink struct{}

func (panickingSink) Name() string { return "panicking" }

func (panickingSink) Deliver(context.Context, Event) error {
	panic("sink exploded")
}

func createdEvent(id string) Event {
	return Event{
		Type: EventReservationCreated,
		Reservation: model.Reservation{
			ID:     id,
			UnitID: "stardome-1",
			Status: model.StatusConfirmed,
		},
		Timestamp: time.Now(),
	}
}

func TestDispatcherDeliversToAllSinks(t *testing.T) {
	d := NewDispatcher(2, 16, logger.Discard())
	first := &recordingSink{}
	second := &recordingSink{}
	d.RegisterSink(first)
	d.RegisterSink(second)
	d.Start()

	d.Publish(createdEvent("RES1"))
	d.Publish(createdEvent("RES2"))
	d.Stop()

	if first.count() != 2 || second.count() != 2 {
		t.Errorf("deliveries = %d/%d, want 2/2", first.count(), second.count())
	}
}

func TestDispatcherIsolatesSinkFailures(t *testing.T) {
	d := NewDispatcher(1, 16, logger.Discard())
	failing := &failingSink{}
	healthy := &recordingSink{}
	d.RegisterSink(panickingSink{})
	d.RegisterSink(failing)
	d.RegisterSink(healthy)
	d.Start()

	d.Publish(createdEvent("RES1"))
	d.Stop()

	if failing.calls.Load() != 1 {
		t.Errorf("failing sink calls = %d, want 1", failing.calls.Load())
	}
	if healthy.count() != 1 {
		t.Errorf("healthy sink deliveries = %d, want 1 despite earlier failures", healthy.count())
	}
}

func TestPublishDoesNotBlockOnSlowSink(t *testing.T) {
	release := make(chan struct{})
	slow := sinkFunc(func(context.Context, Event) error {
		<-release
		return nil
	})

	d := NewDispatcher(1, 1, logger.Discard())
	d.RegisterSink(slow)
	d.Start()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Publish(createdEvent("RES1"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a saturated queue")
	}

	close(release)
	d.Stop()
}

func TestObserverFiresOnCreationOnly(t *testing.T) {
	d := NewDispatcher(1, 16, logger.Discard())

	var calls atomic.Int32
	d.RegisterObserver(func(model.Reservation) {
		calls.Add(1)
	})
	d.Start()

	d.Publish(createdEvent("RES1"))
	d.Publish(Event{
		Type:        EventReservationCancelled,
		Reservation: model.Reservation{ID: "RES1"},
		RefundTier:  model.RefundFull,
		Timestamp:   time.Now(),
	})
	d.Stop()

	if calls.Load() != 1 {
		t.Errorf("observer calls = %d, want 1 (creation events only)", calls.Load())
	}
}

func TestDashboardSinkRetainsMostRecent(t *testing.T) {
	sink := NewDashboardSink(2, logger.Discard())

	for _, id := range []string{"RES1", "RES2", "RES3"} {
		if err := sink.Deliver(context.Background(), createdEvent(id)); err != nil {
			t.Fatalf("Deliver: %v", err)
		}
	}

	recent := sink.Recent()
	if len(recent) != 2 {
		t.Fatalf("retained %d events, want 2", len(recent))
	}
	if recent[0].Reservation.ID != "RES2" || recent[1].Reservation.ID != "RES3" {
		t.Errorf("retained [%s %s], want [RES2 RES3]",
			recent[0].Reservation.ID, recent[1].Reservation.ID)
	}
}

type sinkFunc func(context.Context, Event) error

func (sinkFunc) Name() string { return "func" }

func (f sinkFunc) Deliver(ctx context.Context, event Event) error {
	return f(ctx, event)
}
