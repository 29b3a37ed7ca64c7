package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/agendafacil/booking-platform/internal/api/middleware"
	"github.com/agendafacil/booking-platform/internal/application/services"
)

// FavoritesHandler handles favorites requests
type FavoritesHandler struct {
	favorites *services.FavoritesService
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(favorites *services.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

type toggleFavoriteRequest struct {
	ServiceID string `json:"serviceId"`
}

// Toggle handles POST /favorites and returns the resulting id list
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())

	var payload toggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	favorites, err := h.favorites.Toggle(r.Context(), identity.UserID, payload.ServiceID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"favorites": favorites,
	})
}

// List handles GET /favorites and returns the caller's favorite services
// as full records.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())

	favorites, err := h.favorites.ListServices(r.Context(), identity.UserID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"favorites": favorites,
	})
}
