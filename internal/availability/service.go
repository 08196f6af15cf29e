package availability

import (
	"time"

	"montecampo/internal/catalog"
	"montecampo/pkg/logger"
	"montecampo/pkg/model"
)

// ReservationSource exposes the date ranges that currently block a unit.
// The in-memory reservation store implements it with its confirmed
// reservations.
type ReservationSource interface {
	ActiveRangesForUnit(unitID string) []model.DateRange
}

// Service answers availability and price queries against the catalog, the
// blocked-date calendar and existing reservations. Unknown units degrade
// softly: false for availability, zero for prices.
type Service interface {
	IsAvailable(unitID string, checkIn, checkOut time.Time) bool
	AvailableUnits(checkIn, checkOut time.Time) []model.Unit
	PriceForStay(unitID string, checkIn, checkOut time.Time) float64
	SeasonalPriceForDate(unitID string, date time.Time) float64
	BlockedDatesForUnit(unitID string) []time.Time
}

type service struct {
	catalog      *catalog.Catalog
	reservations ReservationSource
	log          *logger.Logger
}

func NewService(cat *catalog.Catalog, reservations ReservationSource, log *logger.Logger) Service {
	return &service{
		catalog:      cat,
		reservations: reservations,
		log:          log,
	}
}

// IsAvailable reports whether the unit can host the half-open stay
// [checkIn, checkOut). A single overlapping reservation makes the whole unit
// type unavailable; MaxUnits is not consulted. That is a known limitation of
// the single-instance-per-type inventory.
func (s *service) IsAvailable(unitID string, checkIn, checkOut time.Time) bool {
	if _, ok := s.catalog.UnitByID(unitID); !ok {
		return false
	}

	requested := model.DateRange{CheckIn: checkIn, CheckOut: checkOut}.Normalized()

	for _, blocked := range s.catalog.BlockedRangesForUnit(unitID) {
		window := model.DateRange{CheckIn: blocked.StartDate, CheckOut: blocked.EndDate}.Normalized()
		if requested.Overlaps(window) {
			return false
		}
	}

	for _, taken := range s.reservations.ActiveRangesForUnit(unitID) {
		if requested.Overlaps(taken.Normalized()) {
			return false
		}
	}

	return true
}

// AvailableUnits filters the catalog, preserving catalog order.
func (s *service) AvailableUnits(checkIn, checkOut time.Time) []model.Unit {
	var out []model.Unit
	for _, unit := range s.catalog.Units() {
		if s.IsAvailable(unit.ID, checkIn, checkOut) {
			out = append(out, unit)
		}
	}
	return out
}

// PriceForStay sums the seasonal nightly price over every night of the
// half-open stay. The sum is returned untruncated; display formatting is the
// caller's concern.
func (s *service) PriceForStay(unitID string, checkIn, checkOut time.Time) float64 {
	if _, ok := s.catalog.UnitByID(unitID); !ok {
		return 0
	}

	start := model.Day(checkIn)
	nights := model.NightsBetween(checkIn, checkOut)

	var total float64
	for i := 0; i < nights; i++ {
		night := start.AddDate(0, 0, i)
		total += s.SeasonalPriceForDate(unitID, night)
	}

	return total
}

// SeasonalPriceForDate is the base nightly rate scaled by the first seasonal
// rule whose window contains the date, or unscaled when no rule applies.
func (s *service) SeasonalPriceForDate(unitID string, date time.Time) float64 {
	unit, ok := s.catalog.UnitByID(unitID)
	if !ok {
		return 0
	}

	multiplier := 1.0
	for _, rule := range s.catalog.SeasonalRulesForUnit(unitID) {
		if rule.Contains(date) {
			multiplier = rule.PriceMultiplier
			break
		}
	}

	return unit.PricePerNight * multiplier
}

// BlockedDatesForUnit expands every blocked range into individual calendar
// days, endpoints included, in declaration order of the ranges.
func (s *service) BlockedDatesForUnit(unitID string) []time.Time {
	var out []time.Time
	for _, blocked := range s.catalog.BlockedRangesForUnit(unitID) {
		end := model.Day(blocked.EndDate)
		for cur := model.Day(blocked.StartDate); !cur.After(end); cur = cur.AddDate(0, 0, 1) {
			out = append(out, cur)
		}
	}
	return out
}
