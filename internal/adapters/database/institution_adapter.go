package database

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
	"github.com/agendafacil/booking-platform/internal/domain/repositories"
	apperrors "github.com/agendafacil/booking-platform/pkg/errors"
)

const institutionKeyPrefix = "institution:"

// InstitutionAdapter implements institution persistence on the KV store.
type InstitutionAdapter struct {
	store providers.KVStore
}

// NewInstitutionAdapter creates a new institution adapter
func NewInstitutionAdapter(store providers.KVStore) repositories.InstitutionRepository {
	return &InstitutionAdapter{store: store}
}

// Create stores a new institution
func (a *InstitutionAdapter) Create(ctx context.Context, institution *entities.Institution) error {
	value, err := json.Marshal(institution)
	if err != nil {
		return apperrors.NewInternalError("failed to encode institution", err)
	}
	if err := a.store.Set(ctx, institutionKeyPrefix+institution.ID, value); err != nil {
		return apperrors.NewInternalError("failed to store institution", err)
	}
	return nil
}

// GetByID retrieves an institution by ID
func (a *InstitutionAdapter) GetByID(ctx context.Context, id string) (*entities.Institution, error) {
	value, err := a.store.Get(ctx, institutionKeyPrefix+id)
	if err != nil {
		if errors.Is(err, providers.ErrKeyNotFound) {
			return nil, apperrors.NewNotFoundError("institution not found")
		}
		return nil, apperrors.NewInternalError("failed to load institution", err)
	}

	var institution entities.Institution
	if err := json.Unmarshal(value, &institution); err != nil {
		return nil, apperrors.NewInternalError("failed to decode institution", err)
	}
	return &institution, nil
}

// List retrieves every stored institution
func (a *InstitutionAdapter) List(ctx context.Context) ([]*entities.Institution, error) {
	values, err := a.store.GetByPrefix(ctx, institutionKeyPrefix)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan institutions", err)
	}

	institutions := make([]*entities.Institution, 0, len(values))
	for _, value := range values {
		var institution entities.Institution
		if err := json.Unmarshal(value, &institution); err != nil {
			return nil, apperrors.NewInternalError("failed to decode institution", err)
		}
		institutions = append(institutions, &institution)
	}
	return institutions, nil
}
