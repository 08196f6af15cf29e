package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NotFound("Reservation"),
			want: "NOT_FOUND: Reservation not found",
		},
		{
			name: "with cause",
			err:  Internal("Fan-out failed", errors.New("queue full")),
			want: "INTERNAL_ERROR: Fan-out failed (caused by: queue full)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Internal("wrapped", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFoundWithID("Unit", "stardome-1"), http.StatusNotFound},
		{"validation", Validation("bad booking", nil), http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("bad date"), http.StatusBadRequest},
		{"conflict", Conflict("unit already being booked"), http.StatusConflict},
		{"unavailable", Unavailable("reservations"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.StatusCode(); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAsAppError(t *testing.T) {
	plain := errors.New("plain")
	appErr := AsAppError(plain)
	if appErr.Code != CodeInternal {
		t.Errorf("expected plain errors to map to %s, got %s", CodeInternal, appErr.Code)
	}

	original := Conflict("slot held")
	if AsAppError(original) != original {
		t.Error("expected AppError to pass through unchanged")
	}
}
