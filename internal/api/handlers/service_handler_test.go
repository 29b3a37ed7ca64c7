package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

func createService(t *testing.T, env *testEnv, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	recorder := env.request(t, http.MethodPost, "/services", token, body)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	return decode(t, recorder)["service"].(map[string]interface{})
}

func TestServiceCreate_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodPost, "/services", "", map[string]interface{}{
		"name": "Limpeza Dental",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestServiceCreate_AndPublicGet(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.signup(t, "clinica@example.com", "Clínica", "institution")

	service := createService(t, env, token, map[string]interface{}{
		"name":            "Limpeza Dental",
		"category":        "Odontologia",
		"description":     "Profilaxia completa",
		"institutionId":   "inst-1",
		"institutionName": "Clínica Vida Nova",
		"image":           "https://example.com/limpeza.jpg",
	})

	assert.NotEmpty(t, service["id"])
	assert.Equal(t, float64(0), service["rating"])
	assert.Equal(t, float64(0), service["reviewCount"])

	// Reads are public.
	recorder := env.request(t, http.MethodGet, "/services/"+service["id"].(string), "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	fetched := decode(t, recorder)["service"].(map[string]interface{})
	assert.Equal(t, "Limpeza Dental", fetched["name"])
}

func TestServiceCreate_RequiresName(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.signup(t, "clinica@example.com", "Clínica", "institution")

	recorder := env.request(t, http.MethodPost, "/services", token, map[string]interface{}{
		"category": "Odontologia",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServiceGet_Missing(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodGet, "/services/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "service not found", decode(t, recorder)["error"])
}

func TestServiceList_QueryFilters(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.signup(t, "clinica@example.com", "Clínica", "institution")

	createService(t, env, token, map[string]interface{}{
		"name": "Limpeza Dental", "category": "Odontologia", "institutionId": "inst-1",
	})
	createService(t, env, token, map[string]interface{}{
		"name": "Consulta Cardiológica", "category": "Cardiologia", "institutionId": "inst-2",
	})

	t.Run("search", func(t *testing.T) {
		recorder := env.request(t, http.MethodGet, "/services?search=limpeza", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		services := decode(t, recorder)["services"].([]interface{})
		assert.Len(t, services, 1)
	})

	t.Run("category all", func(t *testing.T) {
		recorder := env.request(t, http.MethodGet, "/services?category=all", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		services := decode(t, recorder)["services"].([]interface{})
		assert.Len(t, services, 2)
	})

	t.Run("institution", func(t *testing.T) {
		recorder := env.request(t, http.MethodGet, "/services?institutionId=inst-2", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		services := decode(t, recorder)["services"].([]interface{})
		require.Len(t, services, 1)
		assert.Equal(t, "Consulta Cardiológica", services[0].(map[string]interface{})["name"])
	})
}

func TestServiceUpdate_MergesFields(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.signup(t, "clinica@example.com", "Clínica", "institution")

	service := createService(t, env, token, map[string]interface{}{
		"name": "Limpeza Dental", "category": "Odontologia",
	})

	recorder := env.request(t, http.MethodPut, "/services/"+service["id"].(string), token, map[string]interface{}{
		"description": "Agora com flúor",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	updated := decode(t, recorder)["service"].(map[string]interface{})
	assert.Equal(t, "Limpeza Dental", updated["name"])
	assert.Equal(t, "Agora com flúor", updated["description"])
	assert.NotEmpty(t, updated["updatedAt"])
}

func TestServiceDelete(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.signup(t, "clinica@example.com", "Clínica", "institution")

	service := createService(t, env, token, map[string]interface{}{"name": "Limpeza Dental"})
	id := service["id"].(string)

	recorder := env.request(t, http.MethodDelete, "/services/"+id, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/services/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestServiceListMine_UsesOwnershipFallback(t *testing.T) {
	env := newTestEnv(t)
	userID, token := env.signup(t, "clinica@example.com", "Clínica", "institution")

	// Institution signups own themselves, so services created under the
	// account id come back from /services/mine.
	createService(t, env, token, map[string]interface{}{
		"name": "Limpeza Dental", "institutionId": userID,
	})
	createService(t, env, token, map[string]interface{}{
		"name": "Outro Serviço", "institutionId": "someone-else",
	})

	recorder := env.request(t, http.MethodGet, "/services/mine", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	services := decode(t, recorder)["services"].([]interface{})
	require.Len(t, services, 1)
	assert.Equal(t, "Limpeza Dental", services[0].(map[string]interface{})["name"])
}

func TestServiceCleanWithoutImages(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.signup(t, "clinica@example.com", "Clínica", "institution")

	createService(t, env, token, map[string]interface{}{
		"name": "Com Imagem", "image": "https://example.com/a.jpg",
	})
	createService(t, env, token, map[string]interface{}{"name": "Sem Imagem 1"})
	createService(t, env, token, map[string]interface{}{"name": "Sem Imagem 2"})

	// An empty-string image counts as missing.
	require.NoError(t, env.services.Create(context.Background(), &entities.Service{
		ID:        "svc-empty",
		Name:      "Imagem Vazia",
		Image:     new(string),
		CreatedAt: time.Now().UTC(),
	}))

	recorder := env.request(t, http.MethodDelete, "/services/clean-no-images", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	payload := decode(t, recorder)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(3), payload["deletedCount"])

	recorder = env.request(t, http.MethodGet, "/services", "", nil)
	services := decode(t, recorder)["services"].([]interface{})
	require.Len(t, services, 1)
	assert.Equal(t, "Com Imagem", services[0].(map[string]interface{})["name"])
}
