package database

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
	"github.com/agendafacil/booking-platform/internal/domain/repositories"
	apperrors "github.com/agendafacil/booking-platform/pkg/errors"
)

const serviceKeyPrefix = "service:"

// ServiceAdapter implements service catalog persistence on the KV store.
// Every listing is a full prefix scan narrowed by in-memory predicates;
// that O(n) cost is the accepted price of having a single primitive.
type ServiceAdapter struct {
	store providers.KVStore
}

// NewServiceAdapter creates a new service adapter
func NewServiceAdapter(store providers.KVStore) repositories.ServiceRepository {
	return &ServiceAdapter{store: store}
}

// Create stores a new service
func (a *ServiceAdapter) Create(ctx context.Context, service *entities.Service) error {
	value, err := json.Marshal(service)
	if err != nil {
		return apperrors.NewInternalError("failed to encode service", err)
	}
	if err := a.store.Set(ctx, serviceKeyPrefix+service.ID, value); err != nil {
		return apperrors.NewInternalError("failed to store service", err)
	}
	return nil
}

// GetByID retrieves a service by ID
func (a *ServiceAdapter) GetByID(ctx context.Context, id string) (*entities.Service, error) {
	value, err := a.store.Get(ctx, serviceKeyPrefix+id)
	if err != nil {
		if errors.Is(err, providers.ErrKeyNotFound) {
			return nil, apperrors.NewNotFoundError("service not found")
		}
		return nil, apperrors.NewInternalError("failed to load service", err)
	}

	var service entities.Service
	if err := json.Unmarshal(value, &service); err != nil {
		return nil, apperrors.NewInternalError("failed to decode service", err)
	}
	return &service, nil
}

// Update merges upd into the stored service and refreshes updatedAt
func (a *ServiceAdapter) Update(ctx context.Context, id string, upd entities.ServiceUpdate) (*entities.Service, error) {
	service, err := a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		service.Name = *upd.Name
	}
	if upd.Category != nil {
		service.Category = *upd.Category
	}
	if upd.Description != nil {
		service.Description = *upd.Description
	}
	if upd.InstitutionID != nil {
		service.InstitutionID = *upd.InstitutionID
	}
	if upd.InstitutionName != nil {
		service.InstitutionName = *upd.InstitutionName
	}
	if upd.Location != nil {
		service.Location = *upd.Location
	}
	if upd.Image != nil {
		service.Image = upd.Image
	}
	if upd.Rating != nil {
		service.Rating = *upd.Rating
	}
	if upd.ReviewCount != nil {
		service.ReviewCount = *upd.ReviewCount
	}
	now := time.Now().UTC()
	service.UpdatedAt = &now

	value, err := json.Marshal(service)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode service", err)
	}
	if err := a.store.Set(ctx, serviceKeyPrefix+id, value); err != nil {
		return nil, apperrors.NewInternalError("failed to store service", err)
	}
	return service, nil
}

// Delete removes a service. Related appointments and reviews are left
// untouched; there is no cascade.
func (a *ServiceAdapter) Delete(ctx context.Context, id string) error {
	if err := a.store.Delete(ctx, serviceKeyPrefix+id); err != nil {
		return apperrors.NewInternalError("failed to delete service", err)
	}
	return nil
}

// List retrieves services matching the filter
func (a *ServiceAdapter) List(ctx context.Context, filter repositories.ServiceFilter) ([]*entities.Service, error) {
	values, err := a.store.GetByPrefix(ctx, serviceKeyPrefix)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan services", err)
	}

	services := make([]*entities.Service, 0, len(values))
	for _, value := range values {
		var service entities.Service
		if err := json.Unmarshal(value, &service); err != nil {
			return nil, apperrors.NewInternalError("failed to decode service", err)
		}
		if !matchesFilter(&service, filter) {
			continue
		}
		services = append(services, &service)
	}
	return services, nil
}

func matchesFilter(service *entities.Service, filter repositories.ServiceFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(service.Name), needle) &&
			!strings.Contains(strings.ToLower(service.Category), needle) &&
			!strings.Contains(strings.ToLower(service.Description), needle) {
			return false
		}
	}
	if filter.Category != "" && filter.Category != "all" && service.Category != filter.Category {
		return false
	}
	if filter.InstitutionID != "" && service.InstitutionID != filter.InstitutionID {
		return false
	}
	return true
}
