package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/agendafacil/booking-platform/internal/api/middleware"
	"github.com/agendafacil/booking-platform/internal/application/services"
	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

// NotificationHandler handles notification feed requests
type NotificationHandler struct {
	notifications *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type createNotificationRequest struct {
	UserID    string                    `json:"userId"`
	Type      entities.NotificationType `json:"type"`
	Title     string                    `json:"title"`
	Message   string                    `json:"message"`
	RelatedID string                    `json:"relatedId"`
}

// Create handles POST /notifications. The target user comes from the
// payload, defaulting to the caller, so backoffice tooling can notify
// other users.
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())

	var payload createNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.UserID == "" {
		payload.UserID = identity.UserID
	}

	notification := &entities.Notification{
		UserID:  payload.UserID,
		Type:    payload.Type,
		Title:   payload.Title,
		Message: payload.Message,
	}
	if payload.RelatedID != "" {
		notification.RelatedID = &payload.RelatedID
	}

	if err := h.notifications.Create(r.Context(), notification); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"notification": notification,
	})
}

// List handles GET /notifications, newest first
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())

	notifications, err := h.notifications.ListForUser(r.Context(), identity.UserID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
	})
}

// MarkRead handles PUT /notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notification, err := h.notifications.MarkRead(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"notification": notification,
	})
}

// MarkAllRead handles PUT /notifications/read-all
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())

	if err := h.notifications.MarkAllRead(r.Context(), identity.UserID); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// Delete handles DELETE /notifications/{id}
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
