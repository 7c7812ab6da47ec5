package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udyam-reg/app-udyam/internal/models"
)

func TestHealthCheck(t *testing.T) {
	env := setupTestEnv(t, testEnvOptions{})

	var health models.HealthResponse
	code := env.do(t, http.MethodGet, "/health", "", &health)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "disabled", health.Services["redis"])
	assert.Equal(t, "healthy", health.Services["submissions"])
	assert.Zero(t, health.Submissions)

	var resp models.APIResponse
	require.Equal(t, http.StatusOK, env.postJSON(t, "/api/submit", testRecord, &resp))

	env.do(t, http.MethodGet, "/health", "", &health)
	assert.Equal(t, 1, health.Submissions)
}
