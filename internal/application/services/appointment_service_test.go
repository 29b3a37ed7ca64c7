package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/booking-platform/internal/adapters/database"
	"github.com/agendafacil/booking-platform/internal/adapters/kvstore"
	"github.com/agendafacil/booking-platform/internal/application/services"
	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

func TestAppointmentService_CreatePairsNotification(t *testing.T) {
	store := kvstore.NewMemoryStore()
	appointmentRepo := database.NewAppointmentAdapter(store)
	notificationRepo := database.NewNotificationAdapter(store)
	svc := services.NewAppointmentService(appointmentRepo, notificationRepo, nil)
	ctx := context.Background()

	appointment := &entities.Appointment{
		UserID:          "user-1",
		ServiceID:       "svc-1",
		ServiceName:     "Limpeza Dental",
		InstitutionName: "Clínica Vida Nova",
		Date:            "2026-09-15",
		Time:            "14:00",
	}
	require.NoError(t, svc.Create(ctx, appointment))

	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, entities.AppointmentStatusPending, appointment.Status)
	assert.Nil(t, appointment.UpdatedAt)

	notifications, err := notificationRepo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	notification := notifications[0]
	assert.Equal(t, entities.NotificationTypeAppointment, notification.Type)
	assert.Equal(t, "Agendamento Confirmado", notification.Title)
	assert.Equal(t, "Seu agendamento para Limpeza Dental foi criado com sucesso!", notification.Message)
	assert.False(t, notification.Read)
	require.NotNil(t, notification.RelatedID)
	assert.Equal(t, appointment.ID, *notification.RelatedID)
}

func TestAppointmentService_CreateValidation(t *testing.T) {
	store := kvstore.NewMemoryStore()
	svc := services.NewAppointmentService(
		database.NewAppointmentAdapter(store),
		database.NewNotificationAdapter(store),
		nil,
	)
	ctx := context.Background()

	assert.Error(t, svc.Create(ctx, &entities.Appointment{ServiceID: "svc-1"}))
	assert.Error(t, svc.Create(ctx, &entities.Appointment{UserID: "user-1"}))
}

func TestAppointmentService_BookingSurvivesNotificationFailure(t *testing.T) {
	store := kvstore.NewMemoryStore()
	broken := &failingStore{KVStore: store, failPrefix: "notification:"}
	appointmentRepo := database.NewAppointmentAdapter(store)
	svc := services.NewAppointmentService(appointmentRepo, database.NewNotificationAdapter(broken), nil)
	ctx := context.Background()

	appointment := &entities.Appointment{
		UserID:      "user-1",
		ServiceID:   "svc-1",
		ServiceName: "Limpeza Dental",
		Date:        "2026-09-15",
		Time:        "14:00",
	}
	require.NoError(t, svc.Create(ctx, appointment))

	booked, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, booked, 1)
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	store := kvstore.NewMemoryStore()
	appointmentRepo := database.NewAppointmentAdapter(store)
	svc := services.NewAppointmentService(appointmentRepo, database.NewNotificationAdapter(store), nil)
	ctx := context.Background()

	appointment := &entities.Appointment{
		UserID:    "user-1",
		ServiceID: "svc-1",
		Date:      "2026-09-15",
		Time:      "14:00",
	}
	require.NoError(t, svc.Create(ctx, appointment))

	t.Run("valid transition", func(t *testing.T) {
		updated, err := svc.UpdateStatus(ctx, appointment.ID, entities.AppointmentStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, entities.AppointmentStatusConfirmed, updated.Status)
		require.NotNil(t, updated.UpdatedAt)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, appointment.ID, entities.AppointmentStatus("rescheduled"))
		assert.Error(t, err)
	})

	t.Run("missing appointment", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "ghost", entities.AppointmentStatusCancelled)
		assert.Error(t, err)
	})
}

func TestAppointmentService_ListForUserScopesByUser(t *testing.T) {
	store := kvstore.NewMemoryStore()
	appointmentRepo := database.NewAppointmentAdapter(store)
	svc := services.NewAppointmentService(appointmentRepo, database.NewNotificationAdapter(store), nil)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &entities.Appointment{UserID: "user-1", ServiceID: "svc-1", Date: "2026-09-15", Time: "09:00"}))
	require.NoError(t, svc.Create(ctx, &entities.Appointment{UserID: "user-2", ServiceID: "svc-1", Date: "2026-09-15", Time: "10:00"}))

	booked, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, booked, 1)
	assert.Equal(t, "user-1", booked[0].UserID)
}
