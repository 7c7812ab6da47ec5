package models

import "errors"

// OTP gate errors
var (
	ErrOTPNotFound        = errors.New("no otp on record")
	ErrOTPMismatch        = errors.New("otp mismatch")
	ErrOTPExpired         = errors.New("otp expired")
	ErrOTPTooManyAttempts = errors.New("too many incorrect otp attempts")
	ErrOTPDelivery        = errors.New("otp delivery failed")
)

// Submission errors
var (
	ErrPersistence      = errors.New("failed to persist submission")
	ErrPhoneNotVerified = errors.New("mobile number not verified")
)

// Postal code lookup errors
var (
	ErrPincodeNotFound    = errors.New("pincode not found")
	ErrPincodeRateLimited = errors.New("pincode lookup rate limited")
)

// ValidationError is a user-correctable problem with a single field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}
