package database

import (
	"context"
	"encoding/json"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
	"github.com/agendafacil/booking-platform/internal/domain/repositories"
	apperrors "github.com/agendafacil/booking-platform/pkg/errors"
)

const reviewKeyPrefix = "review:"

// ReviewAdapter implements review persistence on the KV store. Reviews
// are write-once; nothing here updates or deletes them.
type ReviewAdapter struct {
	store providers.KVStore
}

// NewReviewAdapter creates a new review adapter
func NewReviewAdapter(store providers.KVStore) repositories.ReviewRepository {
	return &ReviewAdapter{store: store}
}

// Create stores a new review
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) error {
	value, err := json.Marshal(review)
	if err != nil {
		return apperrors.NewInternalError("failed to encode review", err)
	}
	if err := a.store.Set(ctx, reviewKeyPrefix+review.ID, value); err != nil {
		return apperrors.NewInternalError("failed to store review", err)
	}
	return nil
}

// ListByService retrieves the reviews targeting a service
func (a *ReviewAdapter) ListByService(ctx context.Context, serviceID string) ([]*entities.Review, error) {
	all, err := a.List(ctx)
	if err != nil {
		return nil, err
	}

	reviews := make([]*entities.Review, 0, len(all))
	for _, review := range all {
		if review.ServiceID == serviceID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

// List retrieves every stored review
func (a *ReviewAdapter) List(ctx context.Context) ([]*entities.Review, error) {
	values, err := a.store.GetByPrefix(ctx, reviewKeyPrefix)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan reviews", err)
	}

	reviews := make([]*entities.Review, 0, len(values))
	for _, value := range values {
		var review entities.Review
		if err := json.Unmarshal(value, &review); err != nil {
			return nil, apperrors.NewInternalError("failed to decode review", err)
		}
		reviews = append(reviews, &review)
	}
	return reviews, nil
}
