package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		setEnv       bool
		want         string
	}{
		{
			name:         "environment variable set",
			key:          "TEST_KEY_1",
			defaultValue: "default",
			envValue:     "custom",
			setEnv:       true,
			want:         "custom",
		},
		{
			name:         "environment variable not set",
			key:          "TEST_KEY_2",
			defaultValue: "default",
			setEnv:       false,
			want:         "default",
		},
		{
			name:         "empty environment variable",
			key:          "TEST_KEY_3",
			defaultValue: "default",
			envValue:     "",
			setEnv:       true,
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			got := getEnvOrDefault(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnvOrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, AppConfig)

	assert.Equal(t, 5200, AppConfig.Port)
	assert.Equal(t, "development", AppConfig.Environment)
	assert.Equal(t, OTPStoreMemory, AppConfig.OTPStore)
	assert.Equal(t, OTPDeliveryEcho, AppConfig.OTPDelivery)
	assert.Equal(t, time.Duration(0), AppConfig.OTPTTL)
	assert.Equal(t, 0, AppConfig.OTPMaxAttempts)
	assert.False(t, AppConfig.RequireVerifiedPhone)
	assert.Equal(t, "submissions.csv", AppConfig.SubmissionsFile)
	assert.Equal(t, "https://api.postalpincode.in", AppConfig.PincodeAPIURL)
	assert.Equal(t, 5*time.Second, AppConfig.PincodeTimeout)
	assert.False(t, AppConfig.TracingEnabled)
	assert.Equal(t, 1.0, AppConfig.TracingSampleRatio)
	assert.Equal(t, "dev", AppConfig.ServiceVersion)
	assert.Empty(t, AppConfig.FrontendDir)
}

func TestLoadConfig_OTPKnobs(t *testing.T) {
	t.Setenv("OTP_TTL", "5m")
	t.Setenv("OTP_MAX_ATTEMPTS", "3")
	t.Setenv("REQUIRE_VERIFIED_PHONE", "true")

	cfg, err := loadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.OTPTTL)
	assert.Equal(t, 3, cfg.OTPMaxAttempts)
	assert.True(t, cfg.RequireVerifiedPhone)
}

func TestLoadConfig_PincodeURLTrailingSlash(t *testing.T) {
	t.Setenv("PINCODE_API_URL", "http://localhost:9999/")

	cfg, err := loadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.PincodeAPIURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad port", map[string]string{"PORT": "abc"}, "invalid PORT"},
		{"bad redis db", map[string]string{"REDIS_DB": "x"}, "invalid REDIS_DB"},
		{"bad ttl", map[string]string{"OTP_TTL": "five"}, "invalid OTP_TTL"},
		{"negative ttl", map[string]string{"OTP_TTL": "-1m"}, "invalid OTP_TTL"},
		{"bad attempts", map[string]string{"OTP_MAX_ATTEMPTS": "many"}, "invalid OTP_MAX_ATTEMPTS"},
		{"negative attempts", map[string]string{"OTP_MAX_ATTEMPTS": "-2"}, "invalid OTP_MAX_ATTEMPTS"},
		{"bad delivery", map[string]string{"OTP_DELIVERY": "pigeon"}, "invalid OTP_DELIVERY"},
		{"sms without gateway", map[string]string{"OTP_DELIVERY": "sms"}, "SMS_GATEWAY_URL"},
		{"redis store without uri", map[string]string{"OTP_STORE": "redis"}, "REDIS_URI"},
		{"cluster without addrs", map[string]string{"REDIS_CLUSTER_ENABLED": "true", "REDIS_CLUSTER_ADDRS": " , "}, "REDIS_CLUSTER_ADDRS is required"},
		{"bad cluster flag", map[string]string{"REDIS_CLUSTER_ENABLED": "maybe"}, "invalid REDIS_CLUSTER_ENABLED"},
		{"unknown store", map[string]string{"OTP_STORE": "etcd"}, "invalid OTP_STORE"},
		{"bad rate limit", map[string]string{"PINCODE_RATE_LIMIT": "0"}, "invalid PINCODE_RATE_LIMIT"},
		{"bad sample ratio", map[string]string{"TRACING_SAMPLE_RATIO": "half"}, "invalid TRACING_SAMPLE_RATIO"},
		{"sample ratio above one", map[string]string{"TRACING_SAMPLE_RATIO": "1.5"}, "invalid TRACING_SAMPLE_RATIO"},
		{"bad tracing flag", map[string]string{"TRACING_ENABLED": "yes please"}, "invalid TRACING_ENABLED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := loadFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_SMSDelivery(t *testing.T) {
	t.Setenv("OTP_DELIVERY", "SMS")
	t.Setenv("SMS_GATEWAY_URL", "http://sms.local/send")

	cfg, err := loadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, OTPDeliverySMS, cfg.OTPDelivery)
	assert.Equal(t, "UDYAM", cfg.SMSSenderID)
}

func TestLoadConfig_RedisCluster(t *testing.T) {
	t.Setenv("REDIS_CLUSTER_ENABLED", "true")
	t.Setenv("REDIS_CLUSTER_ADDRS", "node1:6379, node2:6379,,node3:6379")
	t.Setenv("OTP_STORE", "redis")

	cfg, err := loadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.RedisClusterEnabled)
	assert.Equal(t, []string{"node1:6379", "node2:6379", "node3:6379"}, cfg.RedisClusterAddrs)
	assert.Equal(t, OTPStoreRedis, cfg.OTPStore)
}
