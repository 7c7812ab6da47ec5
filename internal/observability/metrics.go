package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "udyam_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// OTPOperations counts OTP requests and verifications by outcome
	OTPOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "udyam_otp_operations_total",
			Help: "Number of OTP operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	// Submissions counts registration submissions by outcome
	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "udyam_submissions_total",
			Help: "Number of registration submissions by status",
		},
		[]string{"status"},
	)

	// PincodeLookups counts postal code directory lookups by outcome
	PincodeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "udyam_pincode_lookups_total",
			Help: "Number of postal code lookups by result",
		},
		[]string{"result"},
	)

	// CacheHits tracks cache hits
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "udyam_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "udyam_active_connections",
			Help: "Number of active connections",
		},
	)
)
