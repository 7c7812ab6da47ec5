package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udyam-reg/app-udyam/internal/models"
)

func TestGenerateVerificationCode(t *testing.T) {
	t.Run("Generates 6-digit code", func(t *testing.T) {
		code := GenerateVerificationCode()
		assert.Len(t, code, models.OTPCodeLength)
	})

	t.Run("Generates only numeric characters", func(t *testing.T) {
		code := GenerateVerificationCode()
		for i, c := range code {
			assert.True(t, c >= '0' && c <= '9',
				"Character at position %d (%c) should be numeric", i, c)
		}
	})

	t.Run("Generates different codes", func(t *testing.T) {
		codes := make(map[string]bool)
		iterations := 50

		for i := 0; i < iterations; i++ {
			codes[GenerateVerificationCode()] = true
		}

		assert.Greater(t, len(codes), 1,
			"Should generate different codes (got %d unique out of %d)", len(codes), iterations)
	})
}

func TestGenerateVerificationCode_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateVerificationCode()

		num, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, num, models.OTPMinValue)
		assert.LessOrEqual(t, num, models.OTPMaxValue)
	}
}

func TestGenerateVerificationCode_NoLeadingZeros(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateVerificationCode()
		assert.NotEqual(t, byte('0'), code[0], "code %s starts with zero", code)
	}
}
