package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	logger := Logger()
	require.NotNil(t, logger)

	logger.Info("test message")
}

func TestMaskIDNumber(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{"valid aadhaar", "123412341234", "XXXX-XXXX-1234"},
		{"another aadhaar", "987654321098", "XXXX-XXXX-1098"},
		{"too short", "12345", "XXXX-XXXX-XXXX"},
		{"empty", "", "XXXX-XXXX-XXXX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskIDNumber(tt.id))
		})
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected string
	}{
		{"ten digit mobile", "9876543210", "98******10"},
		{"short", "123", "**********"},
		{"empty", "", "**********"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskPhone(tt.phone))
		})
	}
}

func TestMaskTaxID(t *testing.T) {
	assert.Equal(t, "***DE****F", MaskTaxID("ABCDE1234F"))
	assert.Equal(t, "**********", MaskTaxID("ABCD1234F"))
}

func TestMaskSensitiveData(t *testing.T) {
	data := map[string]interface{}{
		"aadhaarNumber":    "123412341234",
		"entrepreneurName": "Asha Rao",
		"mobile":           "9876543210",
		"pincode":          "560001",
		"otp":              "483920",
	}

	masked := MaskSensitiveData(data)

	assert.Equal(t, "********", masked["aadhaarNumber"])
	assert.Equal(t, "********", masked["mobile"])
	assert.Equal(t, "********", masked["otp"])
	assert.Equal(t, "Asha Rao", masked["entrepreneurName"])
	assert.Equal(t, "560001", masked["pincode"])
	assert.Equal(t, "123412341234", data["aadhaarNumber"], "input must not be modified")
}

func TestMaskSensitiveData_EmptyMap(t *testing.T) {
	masked := MaskSensitiveData(map[string]interface{}{})

	assert.NotNil(t, masked)
	assert.Empty(t, masked)
}

func TestContains(t *testing.T) {
	slice := []string{"a", "b"}

	assert.True(t, contains(slice, "a"))
	assert.False(t, contains(slice, "c"))
	assert.False(t, contains(nil, ""))
}
