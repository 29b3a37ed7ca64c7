package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/agendafacil/booking-platform/internal/api/middleware"
	"github.com/agendafacil/booking-platform/internal/application/services"
	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

// AppointmentHandler handles appointment requests
type AppointmentHandler struct {
	appointments *services.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointments *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

type createAppointmentRequest struct {
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	InstitutionName string `json:"institutionName"`
	Date            string `json:"date"`
	Time            string `json:"time"`
}

// Create handles POST /appointments. The booking user is always the
// authenticated caller.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())

	var payload createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	appointment := &entities.Appointment{
		UserID:          identity.UserID,
		ServiceID:       payload.ServiceID,
		ServiceName:     payload.ServiceName,
		InstitutionName: payload.InstitutionName,
		Date:            payload.Date,
		Time:            payload.Time,
	}

	if err := h.appointments.Create(r.Context(), appointment); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"appointment": appointment,
	})
}

// List handles GET /appointments and returns the caller's bookings
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())

	appointments, err := h.appointments.ListForUser(r.Context(), identity.UserID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"appointments": appointments,
	})
}

type updateAppointmentStatusRequest struct {
	Status entities.AppointmentStatus `json:"status"`
}

// UpdateStatus handles PUT /appointments/{id}. Status is the only field
// clients are allowed to change after booking.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var payload updateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	appointment, err := h.appointments.UpdateStatus(r.Context(), r.PathValue("id"), payload.Status)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"appointment": appointment,
	})
}
