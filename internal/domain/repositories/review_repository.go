package repositories

import (
	"context"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

// ReviewRepository defines the interface for review operations. Reviews
// are immutable: there is deliberately no update or delete.
type ReviewRepository interface {
	// Create stores a new review
	Create(ctx context.Context, review *entities.Review) error

	// ListByService retrieves the reviews targeting a service
	ListByService(ctx context.Context, serviceID string) ([]*entities.Review, error)

	// List retrieves every stored review
	List(ctx context.Context) ([]*entities.Review, error)
}
