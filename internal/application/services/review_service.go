package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
	"github.com/agendafacil/booking-platform/internal/domain/repositories"
	apperrors "github.com/agendafacil/booking-platform/pkg/errors"
)

// ReviewService creates reviews and keeps the target service's derived
// rating consistent with them.
type ReviewService struct {
	reviews  repositories.ReviewRepository
	services repositories.ServiceRepository
	bus      providers.EventBus
}

// NewReviewService creates a new review service. The event bus is
// optional; pass nil to disable event publishing.
func NewReviewService(
	reviews repositories.ReviewRepository,
	services repositories.ServiceRepository,
	bus providers.EventBus,
) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		services: services,
		bus:      bus,
	}
}

// Create persists the review, then recomputes the target service's
// rating. The two writes are not atomic: a failed recomputation surfaces
// as an error even though the review is already stored, and the rating
// heals on the next review.
func (s *ReviewService) Create(ctx context.Context, review *entities.Review) error {
	if review.ServiceID == "" {
		return apperrors.NewValidationError("serviceId is required")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return apperrors.NewValidationError("rating must be between 1 and 5")
	}

	review.ID = uuid.New().String()
	review.CreatedAt = time.Now().UTC()

	if err := s.reviews.Create(ctx, review); err != nil {
		return err
	}

	if err := s.recomputeRating(ctx, review.ServiceID); err != nil {
		return err
	}

	s.publish(ctx, review)
	return nil
}

// ListByService retrieves the reviews targeting a service
func (s *ReviewService) ListByService(ctx context.Context, serviceID string) ([]*entities.Review, error) {
	return s.reviews.ListByService(ctx, serviceID)
}

// recomputeRating sets the service's rating to the arithmetic mean of all
// its stored reviews and reviewCount to their number. Always a full
// recompute: costlier than an incremental update, but a corrupted value
// can never drift. A missing service is skipped silently; the review
// stays either way.
func (s *ReviewService) recomputeRating(ctx context.Context, serviceID string) error {
	if _, err := s.services.GetByID(ctx, serviceID); err != nil {
		if apperrors.IsNotFound(err) {
			log.Debug().Str("service_id", serviceID).Msg("skipping rating recompute for missing service")
			return nil
		}
		return err
	}

	reviews, err := s.reviews.ListByService(ctx, serviceID)
	if err != nil {
		return err
	}

	rating := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		rating = float64(sum) / float64(len(reviews))
	}
	count := len(reviews)

	_, err = s.services.Update(ctx, serviceID, entities.ServiceUpdate{
		Rating:      &rating,
		ReviewCount: &count,
	})
	return err
}

func (s *ReviewService) publish(ctx context.Context, review *entities.Review) {
	if s.bus == nil {
		return
	}
	event := &entities.Event{
		ID:         uuid.New().String(),
		Type:       entities.EventReviewCreated,
		EntityID:   review.ID,
		UserID:     review.UserID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.bus.Publish(ctx, providers.EventChannelReviews, event); err != nil {
		log.Warn().Err(err).Str("review_id", review.ID).Msg("failed to publish review event")
	}
}
