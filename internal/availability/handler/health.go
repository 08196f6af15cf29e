package handler

import (
	"net/http"

	"montecampo/internal/catalog"
	httputil "montecampo/pkg/http"
	"montecampo/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type HealthResponse struct {
	Status string `json:"status"`
	Units  int    `json:"units,omitempty"`
}

type HealthHandler struct {
	catalog *catalog.Catalog
	log     *logger.Logger
}

func NewHealthHandler(cat *catalog.Catalog, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		catalog: cat,
		log:     log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	})
}

// Ready reports whether the unit catalog loaded. Without it no request can
// be served.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.catalog == nil || len(h.catalog.Units()) == 0 {
		h.log.Error("Readiness check failed: unit catalog is empty",
			"path", r.URL.Path,
		)
		httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ready",
		Units:  len(h.catalog.Units()),
	})
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
