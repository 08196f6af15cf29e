package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	reserrors "montecampo/internal/reservations/errors"
	"montecampo/internal/reservations/service"
	"montecampo/internal/reservations/validator"
	apperrors "montecampo/pkg/errors"
	httputil "montecampo/pkg/http"
	"montecampo/pkg/logger"
	"montecampo/pkg/model"
	"montecampo/pkg/sanitizer"

	"github.com/julienschmidt/httprouter"
)

const dateLayout = "2006-01-02"

type ReservationHandler struct {
	service   *service.Service
	validator *validator.BookingValidator
	log       *logger.Logger
}

func NewReservationHandler(svc *service.Service, v *validator.BookingValidator, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		service:   svc,
		validator: v,
		log:       log,
	}
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/reservations", h.Create)
	router.GET("/reservations", h.GetByEmail)
	router.GET("/reservations/:id", h.GetByID)
	router.POST("/reservations/:id/cancel", h.Cancel)
	router.GET("/stats", h.Stats)
}

type createRequest struct {
	UnitID   string             `json:"unit_id"`
	CheckIn  string             `json:"check_in"`
	CheckOut string             `json:"check_out"`
	Customer model.CustomerInfo `json:"customer"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid check_in date: %s", req.CheckIn)))
		return
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid check_out date: %s", req.CheckOut)))
		return
	}

	customer := model.CustomerInfo{
		Name:           sanitizer.NormalizeName(req.Customer.Name),
		Email:          sanitizer.NormalizeEmail(req.Customer.Email),
		Phone:          sanitizer.NormalizePhone(req.Customer.Phone),
		DocumentNumber: sanitizer.NormalizeDocument(req.Customer.DocumentNumber),
	}

	if err := h.validator.ValidateCustomer(&customer); err != nil {
		httputil.WriteError(w, apperrors.Validation(err.Error(), nil))
		return
	}
	if err := h.validator.ValidateStay(checkIn, checkOut); err != nil {
		httputil.WriteError(w, apperrors.Validation(err.Error(), nil))
		return
	}

	reservation, err := h.service.Book(req.UnitID, customer, checkIn, checkOut)
	if err != nil {
		httputil.WriteError(w, bookingError(err))
		return
	}

	httputil.WriteCreated(w, reservation)
}

func (h *ReservationHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	reservation, ok := h.service.GetByID(id)
	if !ok {
		httputil.WriteError(w, apperrors.NotFoundWithID("reservation", id))
		return
	}

	httputil.WriteSuccess(w, reservation)
}

func (h *ReservationHandler) GetByEmail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := sanitizer.NormalizeEmail(r.URL.Query().Get("email"))
	if email == "" {
		httputil.WriteError(w, apperrors.InvalidInput("email query parameter is required"))
		return
	}

	reservations := h.service.GetByEmail(email)
	if reservations == nil {
		reservations = []model.Reservation{}
	}

	httputil.WriteSuccess(w, reservations)
}

type cancelResponse struct {
	ReservationID string  `json:"reservation_id"`
	Status        string  `json:"status"`
	RefundTier    string  `json:"refund_tier"`
	RefundAmount  float64 `json:"refund_amount"`
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	result, ok := h.service.Cancel(id)
	if !ok {
		httputil.WriteError(w, apperrors.NotFoundWithID("reservation", id))
		return
	}

	httputil.WriteSuccess(w, cancelResponse{
		ReservationID: id,
		Status:        string(model.StatusCancelled),
		RefundTier:    string(result.Tier),
		RefundAmount:  result.Amount,
	})
}

func (h *ReservationHandler) Stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, h.service.Stats())
}

func bookingError(err error) error {
	switch {
	case errors.Is(err, reserrors.ErrInvalidStay):
		return apperrors.InvalidInput(err.Error())
	case errors.Is(err, reserrors.ErrUnitUnavailable):
		return apperrors.Conflict(err.Error())
	case errors.Is(err, reserrors.ErrSlotHeld):
		return apperrors.Conflict(err.Error())
	default:
		return apperrors.Internal("booking failed", err)
	}
}
