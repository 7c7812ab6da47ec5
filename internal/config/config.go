package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// OTP delivery modes
const (
	OTPDeliveryEcho = "echo"
	OTPDeliverySMS  = "sms"
)

// OTP store backends
const (
	OTPStoreMemory = "memory"
	OTPStoreRedis  = "redis"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// Redis configuration. An empty RedisURI disables Redis entirely.
	RedisURI      string `json:"redis_uri"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	// Redis cluster mode replaces RedisURI with a list of node addresses
	RedisClusterEnabled bool     `json:"redis_cluster_enabled"`
	RedisClusterAddrs   []string `json:"redis_cluster_addrs"`

	// OTP gate configuration. Zero TTL or zero max attempts means "off".
	OTPStore             string        `json:"otp_store"`
	OTPDelivery          string        `json:"otp_delivery"`
	OTPTTL               time.Duration `json:"otp_ttl"`
	OTPMaxAttempts       int           `json:"otp_max_attempts"`
	RequireVerifiedPhone bool          `json:"require_verified_phone"`
	VerifiedPhoneTTL     time.Duration `json:"verified_phone_ttl"`

	// SMS gateway, used when OTPDelivery is "sms"
	SMSGatewayURL   string `json:"sms_gateway_url"`
	SMSGatewayToken string `json:"sms_gateway_token"`
	SMSSenderID     string `json:"sms_sender_id"`

	// Submission store
	SubmissionsFile string `json:"submissions_file"`

	// Postal code directory
	PincodeAPIURL    string        `json:"pincode_api_url"`
	PincodeTimeout   time.Duration `json:"pincode_timeout"`
	PincodeCacheTTL  time.Duration `json:"pincode_cache_ttl"`
	PincodeRateLimit int           `json:"pincode_rate_limit"`

	// FrontendDir holds the built wizard frontend. Empty disables static serving.
	FrontendDir string `json:"frontend_dir"`

	// Tracing configuration
	TracingEnabled     bool    `json:"tracing_enabled"`
	TracingEndpoint    string  `json:"tracing_endpoint"`
	TracingSampleRatio float64 `json:"tracing_sample_ratio"`
	ServiceVersion     string  `json:"service_version"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	cfg, err := loadFromEnv()
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

func loadFromEnv() (*Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "5200"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	otpTTL, err := time.ParseDuration(getEnvOrDefault("OTP_TTL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP_TTL: %w", err)
	}
	if otpTTL < 0 {
		return nil, fmt.Errorf("invalid OTP_TTL: must not be negative")
	}

	otpMaxAttempts, err := strconv.Atoi(getEnvOrDefault("OTP_MAX_ATTEMPTS", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP_MAX_ATTEMPTS: %w", err)
	}
	if otpMaxAttempts < 0 {
		return nil, fmt.Errorf("invalid OTP_MAX_ATTEMPTS: must not be negative")
	}

	requireVerified, err := strconv.ParseBool(getEnvOrDefault("REQUIRE_VERIFIED_PHONE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUIRE_VERIFIED_PHONE: %w", err)
	}

	verifiedTTL, err := time.ParseDuration(getEnvOrDefault("VERIFIED_PHONE_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid VERIFIED_PHONE_TTL: %w", err)
	}

	pincodeTimeout, err := time.ParseDuration(getEnvOrDefault("PINCODE_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PINCODE_TIMEOUT: %w", err)
	}

	pincodeCacheTTL, err := time.ParseDuration(getEnvOrDefault("PINCODE_CACHE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid PINCODE_CACHE_TTL: %w", err)
	}

	pincodeRateLimit, err := strconv.Atoi(getEnvOrDefault("PINCODE_RATE_LIMIT", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid PINCODE_RATE_LIMIT: %w", err)
	}
	if pincodeRateLimit <= 0 {
		return nil, fmt.Errorf("invalid PINCODE_RATE_LIMIT: must be positive")
	}

	tracingEnabled, err := strconv.ParseBool(getEnvOrDefault("TRACING_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRACING_ENABLED: %w", err)
	}

	tracingSampleRatio, err := strconv.ParseFloat(getEnvOrDefault("TRACING_SAMPLE_RATIO", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TRACING_SAMPLE_RATIO: %w", err)
	}
	if tracingSampleRatio < 0 || tracingSampleRatio > 1 {
		return nil, fmt.Errorf("invalid TRACING_SAMPLE_RATIO: must be between 0 and 1")
	}

	otpDelivery := strings.ToLower(getEnvOrDefault("OTP_DELIVERY", OTPDeliveryEcho))
	if otpDelivery != OTPDeliveryEcho && otpDelivery != OTPDeliverySMS {
		return nil, fmt.Errorf("invalid OTP_DELIVERY: %q (want %q or %q)", otpDelivery, OTPDeliveryEcho, OTPDeliverySMS)
	}

	smsGatewayURL := getEnvOrDefault("SMS_GATEWAY_URL", "")
	if otpDelivery == OTPDeliverySMS && smsGatewayURL == "" {
		return nil, fmt.Errorf("SMS_GATEWAY_URL environment variable is required when OTP_DELIVERY=sms")
	}

	redisURI := getEnvOrDefault("REDIS_URI", "")
	redisClusterEnabled, err := strconv.ParseBool(getEnvOrDefault("REDIS_CLUSTER_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_CLUSTER_ENABLED: %w", err)
	}
	var redisClusterAddrs []string
	if redisClusterEnabled {
		redisClusterAddrs = splitList(getEnvOrDefault("REDIS_CLUSTER_ADDRS", ""))
		if len(redisClusterAddrs) == 0 {
			return nil, fmt.Errorf("REDIS_CLUSTER_ADDRS is required when REDIS_CLUSTER_ENABLED=true")
		}
	}

	otpStore := strings.ToLower(getEnvOrDefault("OTP_STORE", OTPStoreMemory))
	switch otpStore {
	case OTPStoreMemory:
	case OTPStoreRedis:
		if redisURI == "" && !redisClusterEnabled {
			return nil, fmt.Errorf("REDIS_URI environment variable is required when OTP_STORE=redis")
		}
	default:
		return nil, fmt.Errorf("invalid OTP_STORE: %q (want %q or %q)", otpStore, OTPStoreMemory, OTPStoreRedis)
	}

	return &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// Redis configuration
		RedisURI:      redisURI,
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		RedisClusterEnabled: redisClusterEnabled,
		RedisClusterAddrs:   redisClusterAddrs,

		// OTP gate configuration
		OTPStore:             otpStore,
		OTPDelivery:          otpDelivery,
		OTPTTL:               otpTTL,
		OTPMaxAttempts:       otpMaxAttempts,
		RequireVerifiedPhone: requireVerified,
		VerifiedPhoneTTL:     verifiedTTL,

		SMSGatewayURL:   smsGatewayURL,
		SMSGatewayToken: getEnvOrDefault("SMS_GATEWAY_TOKEN", ""),
		SMSSenderID:     getEnvOrDefault("SMS_SENDER_ID", "UDYAM"),

		SubmissionsFile: getEnvOrDefault("SUBMISSIONS_FILE", "submissions.csv"),

		PincodeAPIURL:    strings.TrimRight(getEnvOrDefault("PINCODE_API_URL", "https://api.postalpincode.in"), "/"),
		PincodeTimeout:   pincodeTimeout,
		PincodeCacheTTL:  pincodeCacheTTL,
		PincodeRateLimit: pincodeRateLimit,

		FrontendDir: getEnvOrDefault("FRONTEND_DIR", ""),

		TracingEnabled:     tracingEnabled,
		TracingEndpoint:    getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
		TracingSampleRatio: tracingSampleRatio,
		ServiceVersion:     getEnvOrDefault("SERVICE_VERSION", "dev"),
	}, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// splitList splits a comma separated value, dropping empty items
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
