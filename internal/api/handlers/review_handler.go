package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/agendafacil/booking-platform/internal/api/middleware"
	"github.com/agendafacil/booking-platform/internal/application/services"
	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

// ReviewHandler handles review requests
type ReviewHandler struct {
	reviews *services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewRequest struct {
	ServiceID string `json:"serviceId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// Create handles POST /reviews. The reviewing user is always the
// authenticated caller.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())

	var payload createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	review := &entities.Review{
		UserID:    identity.UserID,
		ServiceID: payload.ServiceID,
		Rating:    payload.Rating,
		Comment:   payload.Comment,
	}

	if err := h.reviews.Create(r.Context(), review); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"review":  review,
	})
}

// ListByService handles GET /reviews/{serviceId}. The listing is public.
func (h *ReviewHandler) ListByService(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListByService(r.Context(), r.PathValue("serviceId"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
	})
}
