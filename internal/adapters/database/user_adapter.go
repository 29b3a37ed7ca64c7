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

const userKeyPrefix = "user:"

// UserAdapter implements user profile persistence on the KV store.
type UserAdapter struct {
	store providers.KVStore
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(store providers.KVStore) repositories.UserRepository {
	return &UserAdapter{store: store}
}

// Create stores a new user profile
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	if user.Favorites == nil {
		user.Favorites = []string{}
	}
	value, err := json.Marshal(user)
	if err != nil {
		return apperrors.NewInternalError("failed to encode user", err)
	}
	if err := a.store.Set(ctx, userKeyPrefix+user.ID, value); err != nil {
		return apperrors.NewInternalError("failed to store user", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	value, err := a.store.Get(ctx, userKeyPrefix+id)
	if err != nil {
		if errors.Is(err, providers.ErrKeyNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewInternalError("failed to load user", err)
	}

	var user entities.User
	if err := json.Unmarshal(value, &user); err != nil {
		return nil, apperrors.NewInternalError("failed to decode user", err)
	}
	if user.Favorites == nil {
		user.Favorites = []string{}
	}
	return &user, nil
}

// Update merges upd into the stored profile and refreshes updatedAt
func (a *UserAdapter) Update(ctx context.Context, id string, upd entities.UserUpdate) (*entities.User, error) {
	user, err := a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.InstitutionID != nil {
		user.InstitutionID = upd.InstitutionID
	}
	if upd.Favorites != nil {
		user.Favorites = *upd.Favorites
	}
	now := time.Now().UTC()
	user.UpdatedAt = &now

	value, err := json.Marshal(user)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode user", err)
	}
	if err := a.store.Set(ctx, userKeyPrefix+id, value); err != nil {
		return nil, apperrors.NewInternalError("failed to store user", err)
	}
	return user, nil
}

// List retrieves every stored user profile
func (a *UserAdapter) List(ctx context.Context) ([]*entities.User, error) {
	values, err := a.store.GetByPrefix(ctx, userKeyPrefix)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan users", err)
	}

	users := make([]*entities.User, 0, len(values))
	for _, value := range values {
		var user entities.User
		if err := json.Unmarshal(value, &user); err != nil {
			return nil, apperrors.NewInternalError("failed to decode user", err)
		}
		if user.Favorites == nil {
			user.Favorites = []string{}
		}
		users = append(users, &user)
	}
	return users, nil
}
