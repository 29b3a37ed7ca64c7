package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/booking-platform/internal/adapters/database"
	"github.com/agendafacil/booking-platform/internal/adapters/kvstore"
	"github.com/agendafacil/booking-platform/internal/application/services"
	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

func TestNotificationService_CreateAppliesDefaults(t *testing.T) {
	svc := services.NewNotificationService(database.NewNotificationAdapter(kvstore.NewMemoryStore()))
	ctx := context.Background()

	notification := &entities.Notification{
		UserID:  "user-1",
		Title:   "Bem-vindo",
		Message: "Sua conta foi criada",
		Read:    true, // ignored; notifications always start unread
	}
	require.NoError(t, svc.Create(ctx, notification))

	assert.NotEmpty(t, notification.ID)
	assert.Equal(t, entities.NotificationTypeSystem, notification.Type)
	assert.False(t, notification.Read)
}

func TestNotificationService_CreateRequiresUser(t *testing.T) {
	svc := services.NewNotificationService(database.NewNotificationAdapter(kvstore.NewMemoryStore()))

	err := svc.Create(context.Background(), &entities.Notification{Title: "x"})
	assert.Error(t, err)
}

func TestNotificationService_ListForUserNewestFirst(t *testing.T) {
	repo := database.NewNotificationAdapter(kvstore.NewMemoryStore())
	svc := services.NewNotificationService(repo)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, repo.Create(ctx, &entities.Notification{
			ID:        title,
			UserID:    "user-1",
			Type:      entities.NotificationTypeSystem,
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entities.Notification{
		ID:        "other",
		UserID:    "user-2",
		Type:      entities.NotificationTypeSystem,
		CreatedAt: base,
	}))

	notifications, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, notifications, 3)
	assert.Equal(t, "newest", notifications[0].Title)
	assert.Equal(t, "middle", notifications[1].Title)
	assert.Equal(t, "oldest", notifications[2].Title)
}

func TestNotificationService_MarkRead(t *testing.T) {
	svc := services.NewNotificationService(database.NewNotificationAdapter(kvstore.NewMemoryStore()))
	ctx := context.Background()

	notification := &entities.Notification{UserID: "user-1", Title: "x"}
	require.NoError(t, svc.Create(ctx, notification))

	updated, err := svc.MarkRead(ctx, notification.ID)
	require.NoError(t, err)
	assert.True(t, updated.Read)

	_, err = svc.MarkRead(ctx, "ghost")
	assert.Error(t, err)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	repo := database.NewNotificationAdapter(kvstore.NewMemoryStore())
	svc := services.NewNotificationService(repo)
	ctx := context.Background()

	for _, id := range []string{"n1", "n2", "n3"} {
		require.NoError(t, repo.Create(ctx, &entities.Notification{
			ID:        id,
			UserID:    "user-1",
			Type:      entities.NotificationTypeSystem,
			CreatedAt: time.Now().UTC(),
		}))
	}

	require.NoError(t, svc.MarkAllRead(ctx, "user-1"))

	notifications, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	for _, notification := range notifications {
		assert.True(t, notification.Read)
	}

	// A user with nothing stored is a no-op, not an error.
	assert.NoError(t, svc.MarkAllRead(ctx, "ghost"))
}

func TestNotificationService_Delete(t *testing.T) {
	repo := database.NewNotificationAdapter(kvstore.NewMemoryStore())
	svc := services.NewNotificationService(repo)
	ctx := context.Background()

	notification := &entities.Notification{UserID: "user-1", Title: "x"}
	require.NoError(t, svc.Create(ctx, notification))
	require.NoError(t, svc.Delete(ctx, notification.ID))

	notifications, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, notifications)
}
