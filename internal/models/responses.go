package models

import "time"

// APIResponse is the envelope of every /api response
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	// OTP is only set when codes are echoed back (demo delivery)
	OTP string `json:"otp,omitempty"`
}

// StepValidationResponse reports every failing field of a wizard step
type StepValidationResponse struct {
	Success bool              `json:"success"`
	Step    WizardStep        `json:"step"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// PincodeResponse is the autofill payload for a postal code
type PincodeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	City    string `json:"city,omitempty"`
	Region  string `json:"state,omitempty"`
}

// HealthResponse reports service and dependency health
type HealthResponse struct {
	Status      string            `json:"status" example:"healthy"`
	Timestamp   time.Time         `json:"timestamp"`
	Services    map[string]string `json:"services"`
	Submissions int               `json:"submissions" example:"42"`
}
