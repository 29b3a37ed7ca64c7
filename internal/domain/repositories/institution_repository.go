package repositories

import (
	"context"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

// InstitutionRepository defines the interface for institution operations
type InstitutionRepository interface {
	// Create stores a new institution
	Create(ctx context.Context, institution *entities.Institution) error

	// GetByID retrieves an institution by ID
	GetByID(ctx context.Context, id string) (*entities.Institution, error)

	// List retrieves every stored institution
	List(ctx context.Context) ([]*entities.Institution, error)
}
