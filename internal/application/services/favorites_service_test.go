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

func newFavoritesFixture(t *testing.T) (*services.FavoritesService, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	users := database.NewUserAdapter(store)
	svc := services.NewFavoritesService(users, database.NewServiceAdapter(store))

	require.NoError(t, users.Create(context.Background(), &entities.User{
		ID:          "user-1",
		Email:       "maria@example.com",
		Name:        "Maria",
		AccountType: entities.AccountTypeClient,
		CreatedAt:   time.Now().UTC(),
	}))
	return svc, store
}

func TestFavoritesService_ToggleAddsAndRemoves(t *testing.T) {
	svc, _ := newFavoritesFixture(t)
	ctx := context.Background()

	favorites, err := svc.Toggle(ctx, "user-1", "svc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-1"}, favorites)

	favorites, err = svc.Toggle(ctx, "user-1", "svc-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-1", "svc-2"}, favorites)

	// Toggling again removes; the other entry is untouched.
	favorites, err = svc.Toggle(ctx, "user-1", "svc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-2"}, favorites)
}

func TestFavoritesService_TogglePairRestoresState(t *testing.T) {
	svc, _ := newFavoritesFixture(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "user-1", "svc-1")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "user-1", "svc-1")
	require.NoError(t, err)

	services, err := svc.ListServices(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestFavoritesService_ToggleValidation(t *testing.T) {
	svc, _ := newFavoritesFixture(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "user-1", "")
	assert.Error(t, err)

	_, err = svc.Toggle(ctx, "ghost", "svc-1")
	assert.Error(t, err)
}

func TestFavoritesService_ListServicesOmitsDeleted(t *testing.T) {
	svc, store := newFavoritesFixture(t)
	ctx := context.Background()

	serviceRepo := database.NewServiceAdapter(store)
	require.NoError(t, serviceRepo.Create(ctx, &entities.Service{
		ID:        "svc-1",
		Name:      "Limpeza Dental",
		CreatedAt: time.Now().UTC(),
	}))

	_, err := svc.Toggle(ctx, "user-1", "svc-1")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "user-1", "svc-deleted")
	require.NoError(t, err)

	// Only the favorite that still resolves to a live service comes back.
	favorites, err := svc.ListServices(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "svc-1", favorites[0].ID)
}
