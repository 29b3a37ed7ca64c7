package repositories

import (
	"context"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

// ServiceFilter narrows a service listing. All predicates are applied
// in memory after a full prefix scan; listings are never paginated.
type ServiceFilter struct {
	// Search matches case-insensitively as a substring over name,
	// category and description.
	Search string

	// Category matches by equality. Empty and "all" disable the filter.
	Category string

	// InstitutionID restricts to services owned by that institution.
	InstitutionID string
}

// ServiceRepository defines the interface for service catalog operations
type ServiceRepository interface {
	// Create stores a new service
	Create(ctx context.Context, service *entities.Service) error

	// GetByID retrieves a service by ID
	GetByID(ctx context.Context, id string) (*entities.Service, error)

	// Update merges the non-nil fields of upd into the stored service,
	// refreshes updatedAt and returns the updated record
	Update(ctx context.Context, id string, upd entities.ServiceUpdate) (*entities.Service, error)

	// Delete removes a service. Appointments and reviews that reference
	// it are left in place.
	Delete(ctx context.Context, id string) error

	// List retrieves services matching the filter
	List(ctx context.Context, filter ServiceFilter) ([]*entities.Service, error)
}
