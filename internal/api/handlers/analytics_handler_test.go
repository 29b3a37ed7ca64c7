package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalytics_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodGet, "/analytics", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAnalytics_ReflectsStoredData(t *testing.T) {
	env := newTestEnv(t)
	_, institutionToken := env.signup(t, "clinica@example.com", "Clínica", "institution")
	_, mariaToken := env.signup(t, "maria@example.com", "Maria", "client")

	service := createService(t, env, institutionToken, map[string]interface{}{
		"name": "Limpeza Dental", "category": "Odontologia",
	})
	bookAppointment(t, env, mariaToken)

	recorder := env.request(t, http.MethodPost, "/reviews", mariaToken, map[string]interface{}{
		"serviceId": service["id"], "rating": 5,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/analytics", mariaToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	analytics := decode(t, recorder)
	assert.Equal(t, float64(1), analytics["totalServices"])
	assert.Equal(t, float64(1), analytics["totalAppointments"])
	assert.Equal(t, float64(1), analytics["totalReviews"])
	assert.Equal(t, float64(2), analytics["totalUsers"])

	byStatus := analytics["appointmentsByStatus"].(map[string]interface{})
	assert.Equal(t, float64(1), byStatus["pending"])

	monthly := analytics["monthlyAppointments"].([]interface{})
	assert.Len(t, monthly, 6)
}
