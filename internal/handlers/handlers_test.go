package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/udyam-reg/app-udyam/internal/services"
	"github.com/udyam-reg/app-udyam/internal/testutil"
)

// testEnv is a fully wired API over in-memory stores and a temp CSV file
type testEnv struct {
	router   *gin.Engine
	otpStore *services.MemoryOTPStore
	csvPath  string
}

type testEnvOptions struct {
	otp                  services.OTPOptions
	requireVerifiedPhone bool
	csvPath              string
	pincodeURL           string
}

func setupTestEnv(t *testing.T, opts testEnvOptions) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := testutil.NopLogger()
	otpStore := services.NewMemoryOTPStore()

	var marks services.VerifiedPhoneStore
	if opts.requireVerifiedPhone {
		marks = services.NewMemoryVerifiedPhones()
		opts.otp.VerifiedPhones = marks
		opts.otp.VerifiedPhoneTTL = time.Minute
	}

	csvPath := opts.csvPath
	if csvPath == "" {
		csvPath = filepath.Join(t.TempDir(), "submissions.csv")
	}

	otpService := services.NewOTPService(otpStore, services.EchoDelivery{}, opts.otp, logger)
	registration := services.NewRegistrationService(services.NewCSVSubmissionStore(csvPath, logger), marks, time.Minute, logger)
	pincode := services.NewPincodeService(services.PincodeOptions{BaseURL: opts.pincodeURL, Timeout: time.Second}, logger)

	regHandlers := NewRegistrationHandlers(logger, otpService, registration)
	pinHandlers := NewPincodeHandlers(logger, pincode)
	healthHandlers := NewHealthHandlers(logger, nil, registration)

	r := gin.New()
	r.GET("/health", healthHandlers.HealthCheck)
	api := r.Group("/api")
	{
		api.POST("/send-otp", regHandlers.SendOTP)
		api.POST("/verify-otp", regHandlers.VerifyOTP)
		api.POST("/submit", regHandlers.Submit)
		api.POST("/validate/step/:step", regHandlers.ValidateStep)
		api.GET("/pincode/:pincode", pinHandlers.Lookup)
	}

	return &testEnv{router: r, otpStore: otpStore, csvPath: csvPath}
}

// do sends a request with a raw body and decodes the JSON answer into out
func (e *testEnv) do(t *testing.T, method, url, body string, out interface{}) int {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
	}
	return w.Code
}

func (e *testEnv) postJSON(t *testing.T, url string, payload interface{}, out interface{}) int {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return e.do(t, http.MethodPost, url, string(body), out)
}
