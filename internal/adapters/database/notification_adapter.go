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

const notificationKeyPrefix = "notification:"

// NotificationAdapter implements notification persistence on the KV store.
type NotificationAdapter struct {
	store providers.KVStore
}

// NewNotificationAdapter creates a new notification adapter
func NewNotificationAdapter(store providers.KVStore) repositories.NotificationRepository {
	return &NotificationAdapter{store: store}
}

// Create stores a new notification
func (a *NotificationAdapter) Create(ctx context.Context, notification *entities.Notification) error {
	value, err := json.Marshal(notification)
	if err != nil {
		return apperrors.NewInternalError("failed to encode notification", err)
	}
	if err := a.store.Set(ctx, notificationKeyPrefix+notification.ID, value); err != nil {
		return apperrors.NewInternalError("failed to store notification", err)
	}
	return nil
}

// GetByID retrieves a notification by ID
func (a *NotificationAdapter) GetByID(ctx context.Context, id string) (*entities.Notification, error) {
	value, err := a.store.Get(ctx, notificationKeyPrefix+id)
	if err != nil {
		if errors.Is(err, providers.ErrKeyNotFound) {
			return nil, apperrors.NewNotFoundError("notification not found")
		}
		return nil, apperrors.NewInternalError("failed to load notification", err)
	}

	var notification entities.Notification
	if err := json.Unmarshal(value, &notification); err != nil {
		return nil, apperrors.NewInternalError("failed to decode notification", err)
	}
	return &notification, nil
}

// Update merges upd into the stored notification
func (a *NotificationAdapter) Update(ctx context.Context, id string, upd entities.NotificationUpdate) (*entities.Notification, error) {
	notification, err := a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Read != nil {
		notification.Read = *upd.Read
	}

	value, err := json.Marshal(notification)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode notification", err)
	}
	if err := a.store.Set(ctx, notificationKeyPrefix+id, value); err != nil {
		return nil, apperrors.NewInternalError("failed to store notification", err)
	}
	return notification, nil
}

// Delete removes a notification
func (a *NotificationAdapter) Delete(ctx context.Context, id string) error {
	if err := a.store.Delete(ctx, notificationKeyPrefix+id); err != nil {
		return apperrors.NewInternalError("failed to delete notification", err)
	}
	return nil
}

// ListByUser retrieves the notifications addressed to a user
func (a *NotificationAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.Notification, error) {
	values, err := a.store.GetByPrefix(ctx, notificationKeyPrefix)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan notifications", err)
	}

	notifications := make([]*entities.Notification, 0, len(values))
	for _, value := range values {
		var notification entities.Notification
		if err := json.Unmarshal(value, &notification); err != nil {
			return nil, apperrors.NewInternalError("failed to decode notification", err)
		}
		if notification.UserID == userID {
			notifications = append(notifications, &notification)
		}
	}
	return notifications, nil
}
