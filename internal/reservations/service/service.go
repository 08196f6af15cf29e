// Package service implements the reservation lifecycle: guarded booking,
// creation, cancellation with tiered refunds, lookups and statistics.
package service

import (
	"math"
	"time"

	"montecampo/internal/availability"
	"montecampo/internal/catalog"
	"montecampo/internal/notifications"
	reserrors "montecampo/internal/reservations/errors"
	"montecampo/internal/reservations/store"
	"montecampo/pkg/config"
	"montecampo/pkg/logger"
	"montecampo/pkg/model"
)

// Notifier is the slice of the dispatcher the lifecycle needs.
type Notifier interface {
	Publish(event notifications.Event)
	RegisterObserver(fn func(model.Reservation))
}

// CancelResult describes the refund owed for a cancellation.
type CancelResult struct {
	Tier   model.RefundTier
	Amount float64
}

type Service struct {
	catalog      *catalog.Catalog
	availability availability.Service
	store        *store.Store
	locks        *store.SlotLocks
	notifier     Notifier
	rules        config.BusinessRules
	log          *logger.Logger

	now func() time.Time
}

func NewService(
	cat *catalog.Catalog,
	avail availability.Service,
	st *store.Store,
	locks *store.SlotLocks,
	notifier Notifier,
	rules config.BusinessRules,
	log *logger.Logger,
) *Service {
	return &Service{
		catalog:      cat,
		availability: avail,
		store:        st,
		locks:        locks,
		notifier:     notifier,
		rules:        rules,
		log:          log,
		now:          time.Now,
	}
}

// Book is the guarded booking path. It holds a per-unit advisory lock across
// the availability check and the append, so two concurrent requests for
// overlapping dates cannot both succeed. Price is computed inside the lock
// from the seasonal calendar.
func (s *Service) Book(unitID string, customer model.CustomerInfo, checkIn, checkOut time.Time) (model.Reservation, error) {
	stay := model.DateRange{CheckIn: checkIn, CheckOut: checkOut}.Normalized()
	if !stay.IsValid() {
		return model.Reservation{}, reserrors.ErrInvalidStay
	}

	unit, ok := s.catalog.UnitByID(unitID)
	if !ok {
		return model.Reservation{}, reserrors.ErrUnitUnavailable
	}

	if !s.locks.Acquire(unitID) {
		return model.Reservation{}, reserrors.ErrSlotHeld
	}
	defer s.locks.Release(unitID)

	if !s.availability.IsAvailable(unitID, stay.CheckIn, stay.CheckOut) {
		return model.Reservation{}, reserrors.ErrUnitUnavailable
	}

	total := s.availability.PriceForStay(unitID, stay.CheckIn, stay.CheckOut)

	return s.Create(unitID, unit.Name, customer, stay, total), nil
}

// Create appends a confirmed reservation and enqueues the notification
// fan-out. It performs no availability check; callers that need the
// check-then-append sequence to be atomic use Book.
func (s *Service) Create(unitID, unitName string, customer model.CustomerInfo, stay model.DateRange, totalPrice float64) model.Reservation {
	now := s.now()

	reservation := model.Reservation{
		ID:           newReservationCode(now),
		UnitID:       unitID,
		UnitName:     unitName,
		CustomerInfo: customer,
		DateRange:    stay.Normalized(),
		TotalPrice:   totalPrice,
		DepositPaid:  totalPrice * s.rules.DepositFraction,
		Status:       model.StatusConfirmed,
		CreatedAt:    now,
	}

	s.store.Add(reservation)

	s.log.Info("reservation created",
		"reservation_id", reservation.ID,
		"unit_id", unitID,
		"check_in", reservation.DateRange.CheckIn.Format("2006-01-02"),
		"check_out", reservation.DateRange.CheckOut.Format("2006-01-02"),
		"total_price", totalPrice,
		"deposit_paid", reservation.DepositPaid,
	)

	s.notifier.Publish(notifications.Event{
		Type:        notifications.EventReservationCreated,
		Reservation: reservation,
		Timestamp:   now,
	})

	return reservation
}

// Cancel marks the reservation cancelled and reports the refund tier owed.
// The tier depends on how many full days remain before check-in, rounded up.
// Cancellation always succeeds once the reservation is found, even on the
// check-in day itself.
func (s *Service) Cancel(id string) (CancelResult, bool) {
	reservation, ok := s.store.Get(id)
	if !ok {
		return CancelResult{}, false
	}

	now := s.now()
	daysUntilCheckIn := int(math.Ceil(reservation.DateRange.CheckIn.Sub(now).Hours() / 24))

	result := CancelResult{Tier: model.RefundNone}
	switch {
	case daysUntilCheckIn >= s.rules.FullRefundDays:
		result = CancelResult{Tier: model.RefundFull, Amount: reservation.DepositPaid}
	case daysUntilCheckIn >= s.rules.PartialRefundDays:
		result = CancelResult{
			Tier:   model.RefundPartial,
			Amount: reservation.DepositPaid * s.rules.PartialRefundPercent,
		}
	}

	s.store.UpdateStatus(id, model.StatusCancelled)
	reservation.Status = model.StatusCancelled

	s.log.Info("reservation cancelled",
		"reservation_id", id,
		"days_until_check_in", daysUntilCheckIn,
		"refund_tier", string(result.Tier),
		"refund_amount", result.Amount,
	)

	s.notifier.Publish(notifications.Event{
		Type:         notifications.EventReservationCancelled,
		Reservation:  reservation,
		RefundTier:   result.Tier,
		RefundAmount: result.Amount,
		Timestamp:    now,
	})

	return result, true
}

func (s *Service) GetByID(id string) (model.Reservation, bool) {
	return s.store.Get(id)
}

func (s *Service) GetByEmail(email string) []model.Reservation {
	return s.store.ByEmail(email)
}

// RegisterObserver adds a callback fired once per created reservation.
// Observers run on the dispatcher's workers, never on the booking path.
func (s *Service) RegisterObserver(fn func(model.Reservation)) {
	s.notifier.RegisterObserver(fn)
}

// Stats summarizes the collection. Revenue sums deposits over confirmed
// reservations; the month window starts at the first of the current calendar
// month. The cancellation rate is a percentage, zero when the collection is
// empty.
func (s *Service) Stats() model.ReservationStats {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var stats model.ReservationStats
	for _, r := range s.store.All() {
		stats.TotalReservations++
		if !r.CreatedAt.Before(monthStart) {
			stats.ThisMonthReservations++
		}

		switch r.Status {
		case model.StatusConfirmed:
			stats.ConfirmedReservations++
			stats.TotalRevenue += r.DepositPaid
			if !r.CreatedAt.Before(monthStart) {
				stats.ThisMonthRevenue += r.DepositPaid
			}
		case model.StatusCancelled:
			stats.CancelledReservations++
		}
	}

	if stats.TotalReservations > 0 {
		stats.CancellationRate = float64(stats.CancelledReservations) / float64(stats.TotalReservations) * 100
	}

	return stats
}
