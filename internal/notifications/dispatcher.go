package notifications

import (
	"context"
	"sync"

	"montecampo/pkg/logger"
	"montecampo/pkg/model"
)

// Dispatcher runs a bounded queue drained by a fixed pool of workers. Publish
// never blocks: when the queue is full the event is dropped and logged, which
// keeps a slow sink from backing up into the booking path.
type Dispatcher struct {
	queue   chan Event
	workers int
	log     *logger.Logger

	mu    sync.RWMutex
	sinks []Sink

	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewDispatcher(workers, queueSize int, log *logger.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Dispatcher{
		queue:   make(chan Event, queueSize),
		workers: workers,
		log:     log,
	}
}

// RegisterSink adds a delivery destination. Sinks registered after Start
// receive only events dispatched from then on.
func (d *Dispatcher) RegisterSink(sink Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sinks = append(d.sinks, sink)
}

// RegisterObserver wires a per-reservation callback into the fan-out. It only
// fires on creation events and cannot be deregistered.
func (d *Dispatcher) RegisterObserver(fn func(model.Reservation)) {
	d.RegisterSink(&observerSink{fn: fn})
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

// Publish enqueues the event and returns immediately.
func (d *Dispatcher) Publish(event Event) {
	select {
	case d.queue <- event:
	default:
		d.log.Warn("notification queue full, dropping event",
			"event_type", string(event.Type),
			"reservation_id", event.Reservation.ID,
		)
	}
}

// Stop closes the queue and waits for in-flight deliveries to finish.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for event := range d.queue {
		d.mu.RLock()
		sinks := make([]Sink, len(d.sinks))
		copy(sinks, d.sinks)
		d.mu.RUnlock()

		for _, sink := range sinks {
			d.deliver(sink, event)
		}
	}
}

// deliver isolates one sink delivery: a panic or error in one sink must not
// stop delivery to the others.
func (d *Dispatcher) deliver(sink Sink, event Event) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("notification sink panicked",
				"sink", sink.Name(),
				"event_type", string(event.Type),
				"reservation_id", event.Reservation.ID,
				"panic", r,
			)
		}
	}()

	if err := sink.Deliver(context.Background(), event); err != nil {
		d.log.Error("notification delivery failed",
			"sink", sink.Name(),
			"event_type", string(event.Type),
			"reservation_id", event.Reservation.ID,
			"error", err,
		)
	}
}

type observerSink struct {
	fn func(model.Reservation)
}

func (o *observerSink) Name() string { return "observer" }

func (o *observerSink) Deliver(_ context.Context, event Event) error {
	if event.Type != EventReservationCreated {
		return nil
	}
	o.fn(event.Reservation)
	return nil
}
