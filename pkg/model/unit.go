package model

import "time"

type UnitType string

const (
	UnitTypeTent  UnitType = "tent"
	UnitTypeCabin UnitType = "cabin"
	UnitTypeDome  UnitType = "dome"
	UnitTypeYurt  UnitType = "yurt"
)

// Unit is a bookable accommodation type. Units are reference data created at
// process start and never mutated afterwards.
type Unit struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          UnitType `json:"type"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"price_per_night"`
	MaxUnits      int      `json:"max_units"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
}

// BlockedRange marks a maintenance window during which a unit cannot be
// booked. For availability checks the window behaves as the half-open range
// [StartDate, EndDate); the calendar expansion in BlockedDatesForUnit includes
// both endpoints.
type BlockedRange struct {
	UnitID    string    `json:"unit_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// SeasonalRule scopes a price multiplier to a date window. The window is
// inclusive on both ends.
type SeasonalRule struct {
	UnitID          string    `json:"unit_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	PriceMultiplier float64   `json:"price_multiplier"`
	SeasonName      string    `json:"season_name"`
}

// Contains reports whether the rule's window covers the given date,
// endpoints included.
func (r SeasonalRule) Contains(date time.Time) bool {
	d := Day(date)
	return !d.Before(Day(r.StartDate)) && !d.After(Day(r.EndDate))
}
