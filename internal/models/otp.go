package models

import "time"

// OTPEntry is the code currently on record for a phone number
type OTPEntry struct {
	Code      string    `json:"code"`
	Attempts  int       `json:"attempts"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the entry has an expiry and it has passed
func (e OTPEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

// Constants for OTP generation
const (
	OTPCodeLength = 6
	OTPMinValue   = 100000
	OTPMaxValue   = 999999
)
