package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
	"github.com/agendafacil/booking-platform/internal/domain/repositories"
	apperrors "github.com/agendafacil/booking-platform/pkg/errors"
)

// AppointmentService creates appointments and dispatches their companion
// notification.
type AppointmentService struct {
	appointments  repositories.AppointmentRepository
	notifications repositories.NotificationRepository
	bus           providers.EventBus
}

// NewAppointmentService creates a new appointment service. The event bus
// is optional; pass nil to disable event publishing.
func NewAppointmentService(
	appointments repositories.AppointmentRepository,
	notifications repositories.NotificationRepository,
	bus providers.EventBus,
) *AppointmentService {
	return &AppointmentService{
		appointments:  appointments,
		notifications: notifications,
		bus:           bus,
	}
}

// Create persists the appointment with status pending, then creates
// exactly one notification for the booking user. The notification write
// is best-effort: when it fails the appointment still stands and the
// failure is only logged.
func (s *AppointmentService) Create(ctx context.Context, appointment *entities.Appointment) error {
	if appointment.UserID == "" {
		return apperrors.NewValidationError("userId is required")
	}
	if appointment.ServiceID == "" {
		return apperrors.NewValidationError("serviceId is required")
	}

	appointment.ID = uuid.New().String()
	appointment.Status = entities.AppointmentStatusPending
	appointment.CreatedAt = time.Now().UTC()
	appointment.UpdatedAt = nil

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return err
	}

	notification := &entities.Notification{
		ID:        uuid.New().String(),
		UserID:    appointment.UserID,
		Type:      entities.NotificationTypeAppointment,
		Title:     "Agendamento Confirmado",
		Message:   fmt.Sprintf("Seu agendamento para %s foi criado com sucesso!", appointment.ServiceName),
		Read:      false,
		CreatedAt: time.Now().UTC(),
		RelatedID: &appointment.ID,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		log.Warn().Err(err).
			Str("appointment_id", appointment.ID).
			Msg("appointment created but notification write failed")
	}

	s.publish(ctx, appointment)
	return nil
}

// UpdateStatus merges the new status into the appointment
func (s *AppointmentService) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (*entities.Appointment, error) {
	switch status {
	case entities.AppointmentStatusPending,
		entities.AppointmentStatusConfirmed,
		entities.AppointmentStatusCancelled,
		entities.AppointmentStatusCompleted:
	default:
		return nil, apperrors.NewValidationError("invalid appointment status")
	}

	return s.appointments.Update(ctx, id, entities.AppointmentUpdate{Status: &status})
}

// ListForUser retrieves the appointments booked by a user
func (s *AppointmentService) ListForUser(ctx context.Context, userID string) ([]*entities.Appointment, error) {
	return s.appointments.ListByUser(ctx, userID)
}

func (s *AppointmentService) publish(ctx context.Context, appointment *entities.Appointment) {
	if s.bus == nil {
		return
	}
	event := &entities.Event{
		ID:         uuid.New().String(),
		Type:       entities.EventAppointmentCreated,
		EntityID:   appointment.ID,
		UserID:     appointment.UserID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.bus.Publish(ctx, providers.EventChannelAppointments, event); err != nil {
		log.Warn().Err(err).Str("appointment_id", appointment.ID).Msg("failed to publish appointment event")
	}
}
