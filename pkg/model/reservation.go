package model

import "time"

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

type RefundTier string

const (
	RefundFull    RefundTier = "full"
	RefundPartial RefundTier = "partial"
	RefundNone    RefundTier = "none"
)

// CustomerInfo arrives pre-validated from the presentation layer; the
// lifecycle manager does not re-validate it.
type CustomerInfo struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,intl_phone"`
	DocumentNumber string `json:"document_number" validate:"required,document_number"`
}

// Reservation is created by the lifecycle manager on a successful booking.
// Status is the only field that changes after creation.
type Reservation struct {
	ID           string            `json:"id"`
	UnitID       string            `json:"unit_id"`
	UnitName     string            `json:"unit_name"`
	CustomerInfo CustomerInfo      `json:"customer_info"`
	DateRange    DateRange         `json:"date_range"`
	TotalPrice   float64           `json:"total_price"`
	DepositPaid  float64           `json:"deposit_paid"`
	Status       ReservationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}

// ReservationStats summarizes the reservation collection for the dashboard.
// Revenue figures sum deposits over confirmed reservations only.
type ReservationStats struct {
	TotalReservations     int     `json:"total_reservations"`
	ThisMonthReservations int     `json:"this_month_reservations"`
	ConfirmedReservations int     `json:"confirmed_reservations"`
	CancelledReservations int     `json:"cancelled_reservations"`
	TotalRevenue          float64 `json:"total_revenue"`
	ThisMonthRevenue      float64 `json:"this_month_revenue"`
	CancellationRate      float64 `json:"cancellation_rate"`
}
