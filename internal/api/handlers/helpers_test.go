package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agendafacil/booking-platform/internal/adapters/database"
	"github.com/agendafacil/booking-platform/internal/adapters/identity"
	"github.com/agendafacil/booking-platform/internal/adapters/kvstore"
	"github.com/agendafacil/booking-platform/internal/api/handlers"
	"github.com/agendafacil/booking-platform/internal/api/routes"
	"github.com/agendafacil/booking-platform/internal/application/services"
	"github.com/agendafacil/booking-platform/internal/domain/repositories"
)

// testEnv wires the full HTTP surface against an in-memory store and the
// local JWT identity gateway, the way main does for production backends.
type testEnv struct {
	handler  http.Handler
	provider *identity.JWTProvider

	users        repositories.UserRepository
	institutions repositories.InstitutionRepository
	services     repositories.ServiceRepository
	appointments repositories.AppointmentRepository
	reviews      repositories.ReviewRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := kvstore.NewMemoryStore()
	provider := identity.NewJWTProvider("test-secret")

	userAdapter := database.NewUserAdapter(store)
	institutionAdapter := database.NewInstitutionAdapter(store)
	serviceAdapter := database.NewServiceAdapter(store)
	appointmentAdapter := database.NewAppointmentAdapter(store)
	reviewAdapter := database.NewReviewAdapter(store)
	notificationAdapter := database.NewNotificationAdapter(store)

	appointmentService := services.NewAppointmentService(appointmentAdapter, notificationAdapter, nil)
	reviewService := services.NewReviewService(reviewAdapter, serviceAdapter, nil)
	favoritesService := services.NewFavoritesService(userAdapter, serviceAdapter)
	notificationService := services.NewNotificationService(notificationAdapter)
	analyticsService := services.NewAnalyticsService(serviceAdapter, appointmentAdapter, reviewAdapter, userAdapter)

	router := routes.NewRouter(
		provider,
		handlers.NewAuthHandler(provider, userAdapter),
		handlers.NewInstitutionHandler(institutionAdapter, userAdapter),
		handlers.NewServiceHandler(serviceAdapter, userAdapter),
		handlers.NewAppointmentHandler(appointmentService),
		handlers.NewReviewHandler(reviewService),
		handlers.NewFavoritesHandler(favoritesService),
		handlers.NewNotificationHandler(notificationService),
		handlers.NewAnalyticsHandler(analyticsService),
		nil,
	)

	return &testEnv{
		handler:  router.SetupRoutes(),
		provider: provider,

		users:        userAdapter,
		institutions: institutionAdapter,
		services:     serviceAdapter,
		appointments: appointmentAdapter,
		reviews:      reviewAdapter,
	}
}

// request performs an HTTP request against the wired router. A non-empty
// token goes into the Authorization header; a non-nil body is sent as JSON.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	e.handler.ServeHTTP(recorder, req)
	return recorder
}

// decode unmarshals a recorded JSON body into a generic map
func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload
}

// signup registers an account through the API and returns the created
// user id and an access token for it.
func (e *testEnv) signup(t *testing.T, email, name, accountType string) (string, string) {
	t.Helper()

	recorder := e.request(t, http.MethodPost, "/signup", "", map[string]string{
		"email":    email,
		"password": "s3cret",
		"name":     name,
		"type":     accountType,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	payload := decode(t, recorder)
	user, ok := payload["user"].(map[string]interface{})
	require.True(t, ok)
	token, ok := payload["accessToken"].(string)
	require.True(t, ok)

	return user["id"].(string), token
}
