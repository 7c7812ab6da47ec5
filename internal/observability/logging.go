package observability

import (
	"strings"

	"github.com/udyam-reg/app-udyam/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskIDNumber masks a 12-digit Aadhaar number, keeping the last four digits
func MaskIDNumber(id string) string {
	if len(id) != 12 {
		return "XXXX-XXXX-XXXX"
	}
	return "XXXX-XXXX-" + id[8:]
}

// MaskPhone masks a mobile number, keeping the first two and last two digits
func MaskPhone(phone string) string {
	if len(phone) < 6 {
		return "**********"
	}
	return phone[:2] + strings.Repeat("*", len(phone)-4) + phone[len(phone)-2:]
}

// MaskTaxID masks a PAN, keeping the fourth and fifth characters
// (holder type and surname initial) and the check letter
func MaskTaxID(pan string) string {
	if len(pan) != 10 {
		return "**********"
	}
	return "***" + pan[3:5] + "****" + pan[9:]
}

// MaskSensitiveData masks sensitive data in a map
func MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	sensitiveFields := []string{"aadhaarNumber", "mobile", "panNumber", "email", "otp"}
	masked := make(map[string]interface{})

	for k, v := range data {
		if contains(sensitiveFields, k) {
			masked[k] = "********"
		} else {
			masked[k] = v
		}
	}

	return masked
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
