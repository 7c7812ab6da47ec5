package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		expected *PhoneComponents
	}{
		{
			name:  "Indian mobile without country code",
			input: "9876543210",
			expected: &PhoneComponents{
				CountryCode:    "91",
				NationalNumber: "9876543210",
				Full:           "+919876543210",
			},
		},
		{
			name:  "Indian mobile with country code",
			input: "+91 98765 43210",
			expected: &PhoneComponents{
				CountryCode:    "91",
				NationalNumber: "9876543210",
				Full:           "+919876543210",
			},
		},
		{
			name:  "Surrounding whitespace",
			input: "  9876543210 ",
			expected: &PhoneComponents{
				CountryCode:    "91",
				NationalNumber: "9876543210",
				Full:           "+919876543210",
			},
		},
		{
			name:    "Empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "Letters",
			input:   "not-a-phone",
			wantErr: true,
		},
		{
			name:    "Too short",
			input:   "98765",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhoneNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatIndianMobileE164(t *testing.T) {
	got, err := FormatIndianMobileE164("6000000000")
	require.NoError(t, err)
	assert.Equal(t, "+916000000000", got)

	_, err = FormatIndianMobileE164("123")
	assert.Error(t, err)
}
