package handler

import (
	"fmt"
	"net/http"
	"time"

	"montecampo/internal/availability"
	"montecampo/internal/catalog"
	apperrors "montecampo/pkg/errors"
	httputil "montecampo/pkg/http"
	"montecampo/pkg/logger"
	"montecampo/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const dateLayout = "2006-01-02"

type UnitsHandler struct {
	catalog         *catalog.Catalog
	availability    availability.Service
	depositFraction float64
	log             *logger.Logger
}

func NewUnitsHandler(cat *catalog.Catalog, avail availability.Service, depositFraction float64, log *logger.Logger) *UnitsHandler {
	return &UnitsHandler{
		catalog:         cat,
		availability:    avail,
		depositFraction: depositFraction,
		log:             log,
	}
}

func (h *UnitsHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/units", h.List)
	router.GET("/units/:id/quote", h.Quote)
	router.GET("/units/:id/blocked-dates", h.BlockedDates)
}

// List returns the catalog. With check_in and check_out query parameters it
// returns only the units available for that stay.
func (h *UnitsHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	checkInStr := query.Get("check_in")
	checkOutStr := query.Get("check_out")

	if checkInStr == "" && checkOutStr == "" {
		httputil.WriteSuccess(w, h.catalog.Units())
		return
	}

	checkIn, checkOut, err := parseStay(checkInStr, checkOutStr)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, h.availability.AvailableUnits(checkIn, checkOut))
}

type quoteResponse struct {
	UnitID     string  `json:"unit_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
	Deposit    float64 `json:"deposit"`
	Available  bool    `json:"available"`
}

// Quote prices a stay without reserving it. The deposit fraction applied here
// matches the one the lifecycle manager will charge on booking.
func (h *UnitsHandler) Quote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	unitID := ps.ByName("id")
	if _, ok := h.catalog.UnitByID(unitID); !ok {
		httputil.WriteError(w, apperrors.NotFoundWithID("unit", unitID))
		return
	}

	query := r.URL.Query()
	checkIn, checkOut, err := parseStay(query.Get("check_in"), query.Get("check_out"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	total := h.availability.PriceForStay(unitID, checkIn, checkOut)
	stay := model.DateRange{CheckIn: checkIn, CheckOut: checkOut}.Normalized()

	httputil.WriteSuccess(w, quoteResponse{
		UnitID:     unitID,
		CheckIn:    stay.CheckIn.Format(dateLayout),
		CheckOut:   stay.CheckOut.Format(dateLayout),
		Nights:     stay.Nights(),
		TotalPrice: total,
		Deposit:    total * h.depositFraction,
		Available:  h.availability.IsAvailable(unitID, checkIn, checkOut),
	})
}

func (h *UnitsHandler) BlockedDates(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	unitID := ps.ByName("id")
	if _, ok := h.catalog.UnitByID(unitID); !ok {
		httputil.WriteError(w, apperrors.NotFoundWithID("unit", unitID))
		return
	}

	dates := h.availability.BlockedDatesForUnit(unitID)
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(dateLayout))
	}

	httputil.WriteSuccess(w, out)
}

func parseStay(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	if checkInStr == "" || checkOutStr == "" {
		return time.Time{}, time.Time{}, apperrors.InvalidInput("check_in and check_out are required")
	}

	checkIn, err := time.Parse(dateLayout, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.InvalidInput(fmt.Sprintf("invalid check_in date: %s", checkInStr))
	}
	checkOut, err := time.Parse(dateLayout, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.InvalidInput(fmt.Sprintf("invalid check_out date: %s", checkOutStr))
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, apperrors.InvalidInput("check_out must be after check_in")
	}

	return checkIn, checkOut, nil
}
