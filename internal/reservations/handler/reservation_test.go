package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"montecampo/internal/availability"
	"montecampo/internal/catalog"
	"montecampo/internal/notifications"
	"montecampo/internal/reservations/service"
	"montecampo/internal/reservations/store"
	"montecampo/internal/reservations/validator"
	"montecampo/pkg/config"
	"montecampo/pkg/logger"
	"montecampo/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type noopNotifier struct {
	mu     sync.Mutex
	events []notifications.Event
}

func (n *noopNotifier) Publish(event notifications.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *noopNotifier) RegisterObserver(func(model.Reservation)) {}

func testRules() config.BusinessRules {
	return config.BusinessRules{
		MinNights:            1,
		MaxNights:            30,
		CheckInTime:          "15:00",
		CheckOutTime:         "11:00",
		DepositFraction:      0.30,
		FullRefundDays:       7,
		PartialRefundDays:    3,
		PartialRefundPercent: 0.5,
	}
}

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}

	st := store.New()
	avail := availability.NewService(cat, st, logger.Discard())
	svc := service.NewService(cat, avail, st, store.NewSlotLocks(30*time.Second),
		&noopNotifier{}, testRules(), logger.Discard())
	v := validator.NewBookingValidator(testRules(), logger.Discard())

	router := httprouter.New()
	NewReservationHandler(svc, v, logger.Discard()).RegisterRoutes(router)
	return router
}

func do(t *testing.T, router *httprouter.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validBooking = `{
	"unit_id": "stardome-1",
	"check_in": "2024-05-10",
	"check_out": "2024-05-13",
	"customer": {
		"name": "  Ana   Torres ",
		"email": "ANA@Example.com",
		"phone": "+57 300 123-4567",
		"document_number": "10.203.040-50"
	}
}`

func createdReservation(t *testing.T, rec *httptest.ResponseRecorder) model.Reservation {
	t.Helper()
	var body struct {
		Data model.Reservation `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body.Data
}

func TestCreateReservation(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/reservations", validBooking)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	r := createdReservation(t, rec)
	if r.Status != model.StatusConfirmed {
		t.Errorf("status = %q, want confirmed", r.Status)
	}
	if r.TotalPrice != 600000 { // 3 nights × 200000, off season
		t.Errorf("total = %g, want 600000", r.TotalPrice)
	}
	if r.DepositPaid != 180000 {
		t.Errorf("deposit = %g, want 180000", r.DepositPaid)
	}

	// Sanitizer ran before validation.
	if r.CustomerInfo.Name != "Ana Torres" {
		t.Errorf("name = %q, want normalized", r.CustomerInfo.Name)
	}
	if r.CustomerInfo.Email != "ana@example.com" {
		t.Errorf("email = %q, want lowercased", r.CustomerInfo.Email)
	}
	if r.CustomerInfo.Phone != "+573001234567" {
		t.Errorf("phone = %q, want digits only", r.CustomerInfo.Phone)
	}
	if r.CustomerInfo.DocumentNumber != "1020304050" {
		t.Errorf("document = %q, want digits only", r.CustomerInfo.DocumentNumber)
	}
}

func TestCreateReservationConflict(t *testing.T) {
	router := newTestRouter(t)

	if rec := do(t, router, http.MethodPost, "/reservations", validBooking); rec.Code != http.StatusCreated {
		t.Fatalf("first booking status = %d, want 201", rec.Code)
	}

	rec := do(t, router, http.MethodPost, "/reservations", validBooking)
	if rec.Code != http.StatusConflict {
		t.Errorf("overlapping booking status = %d, want 409", rec.Code)
	}
}

func TestCreateReservationRejectsBadInput(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"malformed json", `{`, http.StatusBadRequest},
		{
			"bad date format",
			strings.Replace(validBooking, "2024-05-10", "10/05/2024", 1),
			http.StatusBadRequest,
		},
		{
			"invalid email",
			strings.Replace(validBooking, "ANA@Example.com", "not-an-email", 1),
			http.StatusUnprocessableEntity,
		},
		{
			"stay too long",
			strings.Replace(validBooking, "2024-05-13", "2024-07-10", 1),
			http.StatusUnprocessableEntity,
		},
		{
			"unknown unit",
			strings.Replace(validBooking, "stardome-1", "ghost-unit", 1),
			http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/reservations", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestGetReservation(t *testing.T) {
	router := newTestRouter(t)

	created := createdReservation(t, do(t, router, http.MethodPost, "/reservations", validBooking))

	rec := do(t, router, http.MethodGet, "/reservations/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := createdReservation(t, rec); got.ID != created.ID {
		t.Errorf("id = %q, want %q", got.ID, created.ID)
	}

	if rec := do(t, router, http.MethodGet, "/reservations/NOPE", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", rec.Code)
	}
}

func TestGetReservationsByEmail(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/reservations", validBooking)

	rec := do(t, router, http.MethodGet, "/reservations?email=ana@example.com", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Data []model.Reservation `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 1 {
		t.Errorf("got %d reservations, want 1", len(body.Data))
	}

	// Empty result is an empty list, not null.
	rec = do(t, router, http.MethodGet, "/reservations?email=nobody@example.com", "")
	if !strings.Contains(rec.Body.String(), "[]") {
		t.Errorf("empty result body = %s, want []", rec.Body.String())
	}

	if rec := do(t, router, http.MethodGet, "/reservations", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("missing email status = %d, want 400", rec.Code)
	}
}

func TestCancelReservation(t *testing.T) {
	router := newTestRouter(t)

	created := createdReservation(t, do(t, router, http.MethodPost, "/reservations", validBooking))

	rec := do(t, router, http.MethodPost, "/reservations/"+created.ID+"/cancel", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data cancelResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Status != string(model.StatusCancelled) {
		t.Errorf("status = %q, want cancelled", body.Data.Status)
	}
	if body.Data.RefundTier == "" {
		t.Error("refund_tier missing from response")
	}

	if rec := do(t, router, http.MethodPost, "/reservations/NOPE/cancel", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", rec.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/reservations", validBooking)

	rec := do(t, router, http.MethodGet, "/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Data model.ReservationStats `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.TotalReservations != 1 || body.Data.ConfirmedReservations != 1 {
		t.Errorf("stats = %+v, want one confirmed reservation", body.Data)
	}
	if body.Data.TotalRevenue != 180000 {
		t.Errorf("revenue = %g, want 180000 (deposit)", body.Data.TotalRevenue)
	}
}
