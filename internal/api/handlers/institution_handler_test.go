package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstitutionCreate_RelinksCallerProfile(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.signup(t, "clinica@example.com", "Clínica", "institution")

	recorder := env.request(t, http.MethodPost, "/institutions", token, map[string]string{
		"name":        "Clínica Vida Nova",
		"description": "Atendimento multidisciplinar",
		"address":     "Av. Paulista, 1000",
		"phone":       "(11) 3456-7890",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	institution := decode(t, recorder)["institution"].(map[string]interface{})
	institutionID := institution["id"].(string)
	assert.NotEmpty(t, institutionID)

	// The caller's profile now points at the institution record instead
	// of their own user id.
	recorder = env.request(t, http.MethodGet, "/profile", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	profile := decode(t, recorder)["profile"].(map[string]interface{})
	assert.Equal(t, institutionID, profile["institutionId"])
}

func TestInstitutionCreate_RequiresName(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.signup(t, "clinica@example.com", "Clínica", "institution")

	recorder := env.request(t, http.MethodPost, "/institutions", token, map[string]string{
		"description": "sem nome",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestInstitutionListAndGet_ArePublic(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.signup(t, "clinica@example.com", "Clínica", "institution")

	recorder := env.request(t, http.MethodPost, "/institutions", token, map[string]string{
		"name": "Clínica Vida Nova",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	institutionID := decode(t, recorder)["institution"].(map[string]interface{})["id"].(string)

	recorder = env.request(t, http.MethodGet, "/institutions", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, decode(t, recorder)["institutions"].([]interface{}), 1)

	recorder = env.request(t, http.MethodGet, "/institutions/"+institutionID, "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Clínica Vida Nova", decode(t, recorder)["institution"].(map[string]interface{})["name"])

	recorder = env.request(t, http.MethodGet, "/institutions/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
