package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/agendafacil/booking-platform/internal/api/middleware"
	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/repositories"
	apperrors "github.com/agendafacil/booking-platform/pkg/errors"
)

// InstitutionHandler handles institution requests
type InstitutionHandler struct {
	institutions repositories.InstitutionRepository
	users        repositories.UserRepository
}

// NewInstitutionHandler creates a new institution handler
func NewInstitutionHandler(institutions repositories.InstitutionRepository, users repositories.UserRepository) *InstitutionHandler {
	return &InstitutionHandler{
		institutions: institutions,
		users:        users,
	}
}

type createInstitutionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

// Create handles POST /institutions. The institution is stored first,
// then the caller's profile is relinked to it. A profile that was never
// written is tolerated; any other relink failure surfaces after the
// institution already exists.
func (h *InstitutionHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())

	var payload createInstitutionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if payload.Name == "" {
		respondWithError(w, http.StatusBadRequest, "name is required")
		return
	}

	institution := &entities.Institution{
		ID:          uuid.New().String(),
		UserID:      identity.UserID,
		Name:        payload.Name,
		Description: payload.Description,
		Address:     payload.Address,
		Phone:       payload.Phone,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.institutions.Create(r.Context(), institution); err != nil {
		respondWithAppError(w, err)
		return
	}

	if _, err := h.users.Update(r.Context(), identity.UserID, entities.UserUpdate{InstitutionID: &institution.ID}); err != nil {
		if !apperrors.IsNotFound(err) {
			respondWithAppError(w, err)
			return
		}
		log.Debug().Str("user_id", identity.UserID).Msg("no profile to relink to new institution")
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"institution": institution,
	})
}

// List handles GET /institutions
func (h *InstitutionHandler) List(w http.ResponseWriter, r *http.Request) {
	institutions, err := h.institutions.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"institutions": institutions,
	})
}

// Get handles GET /institutions/{id}
func (h *InstitutionHandler) Get(w http.ResponseWriter, r *http.Request) {
	institution, err := h.institutions.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"institution": institution,
	})
}
