package errors

import "errors"

var (
	ErrNotFound = errors.New("reservation not found")

	ErrUnitUnavailable = errors.New("unit is not available for the selected dates")

	ErrSlotHeld = errors.New("unit is currently being booked by another request")

	ErrInvalidStay = errors.New("check-out must be after check-in")
)
