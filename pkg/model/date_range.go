package model

import (
	"math"
	"time"
)

// DateRange is a half-open interval of calendar dates [CheckIn, CheckOut).
// A night is occupied when its start date falls inside the interval.
type DateRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// Day strips the time-of-day component, anchoring the date at midnight UTC.
// Every range comparison goes through this so that clock drift between two
// inputs can never produce a spurious overlap.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Normalized returns the range with both endpoints anchored at midnight UTC.
func (r DateRange) Normalized() DateRange {
	return DateRange{CheckIn: Day(r.CheckIn), CheckOut: Day(r.CheckOut)}
}

// Overlaps reports whether two half-open ranges share at least one night.
// Back-to-back ranges, where one checkout equals the other check-in, do not
// overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Nights counts the nights covered by the range.
func (r DateRange) Nights() int {
	return NightsBetween(r.CheckIn, r.CheckOut)
}

// IsValid reports whether the checkout strictly follows the check-in.
func (r DateRange) IsValid() bool {
	return r.CheckOut.After(r.CheckIn)
}

// NightsBetween returns ceil((checkOut - checkIn) in days). Equal dates give
// zero nights; callers reject that case before booking.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}
