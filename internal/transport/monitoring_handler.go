package transport

import (
	"errors"
	"net/http"

	"farmmarket/internal/domain"
	"farmmarket/internal/middleware"
	"farmmarket/internal/monitoring"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CropRecommendationsResponse represents the crop advisory dashboard
type CropRecommendationsResponse struct {
	Recommendations []domain.CropRecommendation `json:"recommendations"`
}

// MonitoringHandler serves the read-only farmer advisory dashboards
type MonitoringHandler struct {
	store  *monitoring.Store
	logger *zap.Logger
}

// NewMonitoringHandler creates a new MonitoringHandler
func NewMonitoringHandler(store *monitoring.Store, logger *zap.Logger) *MonitoringHandler {
	return &MonitoringHandler{store: store, logger: logger}
}

// RegisterRoutes registers all monitoring routes
func (h *MonitoringHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/monitoring", func(r chi.Router) {
		r.Get("/crops", h.Crops)
		r.Get("/prices/{crop}", h.Prices)
	})
}

// Crops returns the crop recommendations panel
func (h *MonitoringHandler) Crops(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, CropRecommendationsResponse{
		Recommendations: h.store.Recommendations(),
	})
}

// Prices returns the historical and predicted price outlook for a crop
func (h *MonitoringHandler) Prices(w http.ResponseWriter, r *http.Request) {
	crop := chi.URLParam(r, "crop")

	outlook, err := h.store.Outlook(crop)
	if err != nil {
		if errors.Is(err, monitoring.ErrUnknownCrop) {
			middleware.RespondWithError(w, http.StatusNotFound, "unknown crop")
			return
		}

		h.logger.Error("Failed to load price outlook", zap.String("crop", crop), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, outlook)
}
