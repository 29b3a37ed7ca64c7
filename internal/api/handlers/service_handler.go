package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/agendafacil/booking-platform/internal/api/middleware"
	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/repositories"
	apperrors "github.com/agendafacil/booking-platform/pkg/errors"
)

// ServiceHandler handles service catalog requests
type ServiceHandler struct {
	services repositories.ServiceRepository
	users    repositories.UserRepository
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(services repositories.ServiceRepository, users repositories.UserRepository) *ServiceHandler {
	return &ServiceHandler{
		services: services,
		users:    users,
	}
}

type createServiceRequest struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	InstitutionID   string `json:"institutionId"`
	InstitutionName string `json:"institutionName"`
	Location        string `json:"location"`
	Image           string `json:"image"`
}

// Create handles POST /services
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if payload.Name == "" {
		respondWithError(w, http.StatusBadRequest, "name is required")
		return
	}

	service := &entities.Service{
		ID:              uuid.New().String(),
		Name:            payload.Name,
		Category:        payload.Category,
		Description:     payload.Description,
		InstitutionID:   payload.InstitutionID,
		InstitutionName: payload.InstitutionName,
		Location:        payload.Location,
		Rating:          0,
		ReviewCount:     0,
		CreatedAt:       time.Now().UTC(),
	}
	if payload.Image != "" {
		service.Image = &payload.Image
	}

	if err := h.services.Create(r.Context(), service); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"service": service,
	})
}

// List handles GET /services with optional search, category and
// institutionId query parameters.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ServiceFilter{
		Search:        r.URL.Query().Get("search"),
		Category:      r.URL.Query().Get("category"),
		InstitutionID: r.URL.Query().Get("institutionId"),
	}

	services, err := h.services.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"services": services,
	})
}

// Get handles GET /services/{id}
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	service, err := h.services.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"service": service,
	})
}

// ListMine handles GET /services/mine. It resolves the caller's profile
// and returns the services their account owns.
func (h *ServiceHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())

	user, err := h.users.GetByID(r.Context(), identity.UserID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	all, err := h.services.List(r.Context(), repositories.ServiceFilter{})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	mine := make([]*entities.Service, 0)
	for _, service := range all {
		if service.OwnedBy(user) {
			mine = append(mine, service)
		}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"services": mine,
	})
}

// Update handles PUT /services/{id}. Only the fields present in the
// payload are changed.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd entities.ServiceUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	service, err := h.services.Update(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"service": service,
	})
}

// Delete handles DELETE /services/{id}
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// CleanWithoutImages handles DELETE /services/clean-no-images. It removes
// every service without an image and reports how many were deleted.
func (h *ServiceHandler) CleanWithoutImages(w http.ResponseWriter, r *http.Request) {
	all, err := h.services.List(r.Context(), repositories.ServiceFilter{})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	deleted := 0
	for _, service := range all {
		if service.Image != nil && *service.Image != "" {
			continue
		}
		if err := h.services.Delete(r.Context(), service.ID); err != nil {
			respondWithAppError(w, err)
			return
		}
		deleted++
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"deletedCount": deleted,
	})
}

// respondWithJSON writes a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

// respondWithError writes a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithAppError maps an application error onto its HTTP status.
// Anything that is not an AppError is treated as a store failure and
// reported as a 400, message included.
func respondWithAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		respondWithError(w, appErr.StatusCode(), appErr.Message)
		return
	}
	respondWithError(w, http.StatusBadRequest, err.Error())
}
