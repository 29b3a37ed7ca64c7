package repositories

import (
	"context"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	// Create stores a new notification
	Create(ctx context.Context, notification *entities.Notification) error

	// GetByID retrieves a notification by ID
	GetByID(ctx context.Context, id string) (*entities.Notification, error)

	// Update merges the non-nil fields of upd into the stored
	// notification and returns the updated record
	Update(ctx context.Context, id string, upd entities.NotificationUpdate) (*entities.Notification, error)

	// Delete removes a notification
	Delete(ctx context.Context, id string) error

	// ListByUser retrieves the notifications addressed to a user
	ListByUser(ctx context.Context, userID string) ([]*entities.Notification, error)
}
