package services

import (
	"context"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/repositories"
	apperrors "github.com/agendafacil/booking-platform/pkg/errors"
)

// FavoritesService toggles and resolves a user's favorite services.
type FavoritesService struct {
	users    repositories.UserRepository
	services repositories.ServiceRepository
}

// NewFavoritesService creates a new favorites service
func NewFavoritesService(
	users repositories.UserRepository,
	services repositories.ServiceRepository,
) *FavoritesService {
	return &FavoritesService{
		users:    users,
		services: services,
	}
}

// Toggle removes serviceID from the user's favorites when present and
// appends it otherwise, then persists the profile. There is no separate
// add or remove: calling twice restores the prior state. Concurrent
// toggles race as plain read-modify-write; the last write wins.
func (s *FavoritesService) Toggle(ctx context.Context, userID, serviceID string) ([]string, error) {
	if serviceID == "" {
		return nil, apperrors.NewValidationError("serviceId is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	favorites := make([]string, 0, len(user.Favorites)+1)
	found := false
	for _, id := range user.Favorites {
		if id == serviceID {
			found = true
			continue
		}
		favorites = append(favorites, id)
	}
	if !found {
		favorites = append(favorites, serviceID)
	}

	updated, err := s.users.Update(ctx, userID, entities.UserUpdate{Favorites: &favorites})
	if err != nil {
		return nil, err
	}
	return updated.Favorites, nil
}

// ListServices resolves the user's favorite ids against the live service
// records. Favorites pointing at deleted services are omitted.
func (s *FavoritesService) ListServices(ctx context.Context, userID string) ([]*entities.Service, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	favoriteIDs := make(map[string]struct{}, len(user.Favorites))
	for _, id := range user.Favorites {
		favoriteIDs[id] = struct{}{}
	}

	all, err := s.services.List(ctx, repositories.ServiceFilter{})
	if err != nil {
		return nil, err
	}

	favorites := make([]*entities.Service, 0, len(favoriteIDs))
	for _, service := range all {
		if _, ok := favoriteIDs[service.ID]; ok {
			favorites = append(favorites, service)
		}
	}
	return favorites, nil
}
