package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/repositories"
	apperrors "github.com/agendafacil/booking-platform/pkg/errors"
)

// NotificationService manages a user's notification feed.
type NotificationService struct {
	notifications repositories.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifications repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// Create stores a new notification with defaults applied
func (s *NotificationService) Create(ctx context.Context, notification *entities.Notification) error {
	if notification.UserID == "" {
		return apperrors.NewValidationError("userId is required")
	}
	if notification.Type == "" {
		notification.Type = entities.NotificationTypeSystem
	}

	notification.ID = uuid.New().String()
	notification.Read = false
	notification.CreatedAt = time.Now().UTC()

	return s.notifications.Create(ctx, notification)
}

// ListForUser retrieves the user's notifications, newest first
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]*entities.Notification, error) {
	notifications, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

// MarkRead flips the read flag on a single notification
func (s *NotificationService) MarkRead(ctx context.Context, id string) (*entities.Notification, error) {
	read := true
	return s.notifications.Update(ctx, id, entities.NotificationUpdate{Read: &read})
}

// MarkAllRead flips the read flag on every notification of the user.
// Each record is rewritten individually; a failure partway leaves the
// earlier ones marked.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	notifications, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	read := true
	for _, notification := range notifications {
		if notification.Read {
			continue
		}
		if _, err := s.notifications.Update(ctx, notification.ID, entities.NotificationUpdate{Read: &read}); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a notification
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.notifications.Delete(ctx, id)
}
