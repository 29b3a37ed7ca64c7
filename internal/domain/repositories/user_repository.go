package repositories

import (
	"context"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

// UserRepository defines the interface for user profile operations
type UserRepository interface {
	// Create stores a new user profile
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// Update merges the non-nil fields of upd into the stored profile,
	// refreshes updatedAt and returns the updated record
	Update(ctx context.Context, id string, upd entities.UserUpdate) (*entities.User, error)

	// List retrieves every stored user profile
	List(ctx context.Context) ([]*entities.User, error)
}
