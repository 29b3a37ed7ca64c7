package repositories

import (
	"context"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

// AppointmentRepository defines the interface for appointment operations
type AppointmentRepository interface {
	// Create stores a new appointment
	Create(ctx context.Context, appointment *entities.Appointment) error

	// GetByID retrieves an appointment by ID
	GetByID(ctx context.Context, id string) (*entities.Appointment, error)

	// Update merges the non-nil fields of upd into the stored
	// appointment, refreshes updatedAt and returns the updated record
	Update(ctx context.Context, id string, upd entities.AppointmentUpdate) (*entities.Appointment, error)

	// ListByUser retrieves the appointments booked by a user
	ListByUser(ctx context.Context, userID string) ([]*entities.Appointment, error)

	// List retrieves every stored appointment
	List(ctx context.Context) ([]*entities.Appointment, error)
}
