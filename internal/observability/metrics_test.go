package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsExist(t *testing.T) {
	assert.NotNil(t, RequestDuration)
	assert.NotNil(t, OTPOperations)
	assert.NotNil(t, Submissions)
	assert.NotNil(t, PincodeLookups)
	assert.NotNil(t, CacheHits)
	assert.NotNil(t, ActiveConnections)
}

func TestRequestDuration(t *testing.T) {
	RequestDuration.WithLabelValues("/api/send-otp", "POST", "200").Observe(0.05)
	RequestDuration.WithLabelValues("/api/submit", "POST", "400").Observe(0.01)
}

func TestOTPOperations(t *testing.T) {
	counter := OTPOperations.WithLabelValues("verify", "test_mismatch")
	before := testutil.ToFloat64(counter)

	counter.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestSubmissions(t *testing.T) {
	counter := Submissions.WithLabelValues("test_saved")
	before := testutil.ToFloat64(counter)

	counter.Inc()
	counter.Inc()

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestActiveConnections(t *testing.T) {
	before := testutil.ToFloat64(ActiveConnections)

	ActiveConnections.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ActiveConnections))

	ActiveConnections.Dec()
	assert.Equal(t, before, testutil.ToFloat64(ActiveConnections))
}
