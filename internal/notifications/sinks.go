package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"montecampo/pkg/logger"
)

// The email and admin sinks simulate their upstream providers: they sleep for
// the configured latency and log the payload they would have sent.

type EmailSink struct {
	latency time.Duration
	log     *logger.Logger
}

func NewEmailSink(latency time.Duration, log *logger.Logger) *EmailSink {
	return &EmailSink{latency: latency, log: log}
}

func (s *EmailSink) Name() string { return "guest-email" }

func (s *EmailSink) Deliver(ctx context.Context, event Event) error {
	if err := sleepCtx(ctx, s.latency); err != nil {
		return err
	}

	r := event.Reservation
	switch event.Type {
	case EventReservationCreated:
		s.log.Info("confirmation email sent",
			"to", r.CustomerInfo.Email,
			"subject", fmt.Sprintf("Booking confirmed - %s", r.ID),
			"template", "booking-confirmation",
			"unit", r.UnitName,
			"check_in", r.DateRange.CheckIn.Format("2006-01-02"),
			"check_out", r.DateRange.CheckOut.Format("2006-01-02"),
			"deposit_paid", r.DepositPaid,
		)
	case EventReservationCancelled:
		s.log.Info("cancellation email sent",
			"to", r.CustomerInfo.Email,
			"subject", fmt.Sprintf("Booking cancelled - %s", r.ID),
			"template", "cancellation-notice",
			"refund_tier", string(event.RefundTier),
			"refund_amount", event.RefundAmount,
		)
	}
	return nil
}

type AdminMessageSink struct {
	latency time.Duration
	log     *logger.Logger
}

func NewAdminMessageSink(latency time.Duration, log *logger.Logger) *AdminMessageSink {
	return &AdminMessageSink{latency: latency, log: log}
}

func (s *AdminMessageSink) Name() string { return "admin-message" }

func (s *AdminMessageSink) Deliver(ctx context.Context, event Event) error {
	if err := sleepCtx(ctx, s.latency); err != nil {
		return err
	}

	r := event.Reservation
	switch event.Type {
	case EventReservationCreated:
		s.log.Info("admin message sent",
			"text", fmt.Sprintf("New booking %s: %s, %s, %s to %s",
				r.ID, r.UnitName, r.CustomerInfo.Name,
				r.DateRange.CheckIn.Format("2006-01-02"),
				r.DateRange.CheckOut.Format("2006-01-02")),
			"total_price", r.TotalPrice,
		)
	case EventReservationCancelled:
		s.log.Info("admin message sent",
			"text", fmt.Sprintf("Booking %s cancelled by %s", r.ID, r.CustomerInfo.Name),
			"refund_tier", string(event.RefundTier),
		)
	}
	return nil
}

// DashboardSink feeds the in-process activity log the stats endpoint sits
// next to. Unlike the simulated providers it has no artificial latency.
type DashboardSink struct {
	log *logger.Logger

	mu     sync.Mutex
	recent []Event
	max    int
}

func (s *DashboardSink) Name() string { return "dashboard" }

func NewDashboardSink(max int, log *logger.Logger) *DashboardSink {
	if max < 1 {
		max = 1
	}
	return &DashboardSink{log: log, max: max}
}

func (s *DashboardSink) Deliver(_ context.Context, event Event) error {
	s.mu.Lock()
	s.recent = append(s.recent, event)
	if len(s.recent) > s.max {
		s.recent = s.recent[len(s.recent)-s.max:]
	}
	s.mu.Unlock()

	s.log.Debug("dashboard feed updated",
		"event_type", string(event.Type),
		"reservation_id", event.Reservation.ID,
	)
	return nil
}

// Recent returns the retained events, oldest first.
func (s *DashboardSink) Recent() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, len(s.recent))
	copy(out, s.recent)
	return out
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
