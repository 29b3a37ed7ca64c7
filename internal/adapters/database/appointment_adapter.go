package database

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
	"github.com/agendafacil/booking-platform/internal/domain/repositories"
	apperrors "github.com/agendafacil/booking-platform/pkg/errors"
)

const appointmentKeyPrefix = "appointment:"

// AppointmentAdapter implements appointment persistence on the KV store.
type AppointmentAdapter struct {
	store providers.KVStore
}

// NewAppointmentAdapter creates a new appointment adapter
func NewAppointmentAdapter(store providers.KVStore) repositories.AppointmentRepository {
	return &AppointmentAdapter{store: store}
}

// Create stores a new appointment
func (a *AppointmentAdapter) Create(ctx context.Context, appointment *entities.Appointment) error {
	value, err := json.Marshal(appointment)
	if err != nil {
		return apperrors.NewInternalError("failed to encode appointment", err)
	}
	if err := a.store.Set(ctx, appointmentKeyPrefix+appointment.ID, value); err != nil {
		return apperrors.NewInternalError("failed to store appointment", err)
	}
	return nil
}

// GetByID retrieves an appointment by ID
func (a *AppointmentAdapter) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	value, err := a.store.Get(ctx, appointmentKeyPrefix+id)
	if err != nil {
		if errors.Is(err, providers.ErrKeyNotFound) {
			return nil, apperrors.NewNotFoundError("appointment not found")
		}
		return nil, apperrors.NewInternalError("failed to load appointment", err)
	}

	var appointment entities.Appointment
	if err := json.Unmarshal(value, &appointment); err != nil {
		return nil, apperrors.NewInternalError("failed to decode appointment", err)
	}
	return &appointment, nil
}

// Update merges upd into the stored appointment and refreshes updatedAt
func (a *AppointmentAdapter) Update(ctx context.Context, id string, upd entities.AppointmentUpdate) (*entities.Appointment, error) {
	appointment, err := a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil {
		appointment.Status = *upd.Status
	}
	if upd.Date != nil {
		appointment.Date = *upd.Date
	}
	if upd.Time != nil {
		appointment.Time = *upd.Time
	}
	now := time.Now().UTC()
	appointment.UpdatedAt = &now

	value, err := json.Marshal(appointment)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode appointment", err)
	}
	if err := a.store.Set(ctx, appointmentKeyPrefix+id, value); err != nil {
		return nil, apperrors.NewInternalError("failed to store appointment", err)
	}
	return appointment, nil
}

// ListByUser retrieves the appointments booked by a user
func (a *AppointmentAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.Appointment, error) {
	all, err := a.List(ctx)
	if err != nil {
		return nil, err
	}

	appointments := make([]*entities.Appointment, 0, len(all))
	for _, appointment := range all {
		if appointment.UserID == userID {
			appointments = append(appointments, appointment)
		}
	}
	return appointments, nil
}

// List retrieves every stored appointment
func (a *AppointmentAdapter) List(ctx context.Context) ([]*entities.Appointment, error) {
	values, err := a.store.GetByPrefix(ctx, appointmentKeyPrefix)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan appointments", err)
	}

	appointments := make([]*entities.Appointment, 0, len(values))
	for _, value := range values {
		var appointment entities.Appointment
		if err := json.Unmarshal(value, &appointment); err != nil {
			return nil, apperrors.NewInternalError("failed to decode appointment", err)
		}
		appointments = append(appointments, &appointment)
	}
	return appointments, nil
}
