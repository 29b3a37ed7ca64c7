package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites_RequireToken(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodPost, "/favorites", "", map[string]string{"serviceId": "svc-1"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/favorites", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestFavorites_ToggleAndList(t *testing.T) {
	env := newTestEnv(t)
	_, institutionToken := env.signup(t, "clinica@example.com", "Clínica", "institution")
	_, token := env.signup(t, "maria@example.com", "Maria", "client")

	service := createService(t, env, institutionToken, map[string]interface{}{"name": "Limpeza Dental"})
	serviceID := service["id"].(string)

	// Toggle on.
	recorder := env.request(t, http.MethodPost, "/favorites", token, map[string]string{"serviceId": serviceID})
	require.Equal(t, http.StatusOK, recorder.Code)
	favorites := decode(t, recorder)["favorites"].([]interface{})
	require.Len(t, favorites, 1)
	assert.Equal(t, serviceID, favorites[0])

	// The listing resolves ids to full service records.
	recorder = env.request(t, http.MethodGet, "/favorites", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	resolved := decode(t, recorder)["favorites"].([]interface{})
	require.Len(t, resolved, 1)
	assert.Equal(t, "Limpeza Dental", resolved[0].(map[string]interface{})["name"])

	// Toggle off.
	recorder = env.request(t, http.MethodPost, "/favorites", token, map[string]string{"serviceId": serviceID})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, decode(t, recorder)["favorites"])
}

func TestFavorites_ToggleRequiresServiceID(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.signup(t, "maria@example.com", "Maria", "client")

	recorder := env.request(t, http.MethodPost, "/favorites", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestFavorites_DeletedServiceOmittedFromListing(t *testing.T) {
	env := newTestEnv(t)
	_, institutionToken := env.signup(t, "clinica@example.com", "Clínica", "institution")
	_, token := env.signup(t, "maria@example.com", "Maria", "client")

	service := createService(t, env, institutionToken, map[string]interface{}{"name": "Limpeza Dental"})
	serviceID := service["id"].(string)

	recorder := env.request(t, http.MethodPost, "/favorites", token, map[string]string{"serviceId": serviceID})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodDelete, "/services/"+serviceID, institutionToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// The dangling id stays stored but resolves to nothing.
	recorder = env.request(t, http.MethodGet, "/favorites", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, decode(t, recorder)["favorites"])
}
