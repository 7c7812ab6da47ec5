package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udyam-reg/app-udyam/internal/models"
)

func pincodeDirectory(t *testing.T, body string) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func TestPincodeLookup(t *testing.T) {
	url := pincodeDirectory(t, `[{"Status":"Success","PostOffice":[{"Name":"GPO","Block":"Bangalore North","District":"Bangalore","State":"Karnataka"}]}]`)
	env := setupTestEnv(t, testEnvOptions{pincodeURL: url})

	var resp models.PincodeResponse
	code := env.do(t, http.MethodGet, "/api/pincode/560001", "", &resp)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Bangalore North", resp.City)
	assert.Equal(t, "Karnataka", resp.Region)
}

func TestPincodeLookup_NotFound(t *testing.T) {
	url := pincodeDirectory(t, `[{"Status":"Error","PostOffice":null}]`)
	env := setupTestEnv(t, testEnvOptions{pincodeURL: url})

	var resp models.PincodeResponse
	code := env.do(t, http.MethodGet, "/api/pincode/999999", "", &resp)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, resp.Success)
	assert.Empty(t, resp.City)
	assert.Empty(t, resp.Region)
}

func TestPincodeLookup_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	env := setupTestEnv(t, testEnvOptions{pincodeURL: url})

	var resp models.PincodeResponse
	code := env.do(t, http.MethodGet, "/api/pincode/560001", "", &resp)
	assert.Equal(t, http.StatusNotFound, code, "directory failure means no autofill")
}

func TestPincodeLookup_Invalid(t *testing.T) {
	env := setupTestEnv(t, testEnvOptions{pincodeURL: "http://127.0.0.1:1"})

	var resp models.PincodeResponse
	code := env.do(t, http.MethodGet, "/api/pincode/012345", "", &resp)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Enter a valid 6-digit PIN code", resp.Message)
}
