package handlers

import (
	"net/http"

	"github.com/agendafacil/booking-platform/internal/application/services"
)

// AnalyticsHandler handles analytics requests
type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Get handles GET /analytics. The rollup is computed on demand from the
// full data set; nothing is cached between calls.
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analytics.Compute(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, analytics)
}
