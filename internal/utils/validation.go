package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/udyam-reg/app-udyam/internal/models"
)

var (
	idNumberRegex   = regexp.MustCompile(`^[0-9]{12}$`)
	phoneRegex      = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	postalCodeRegex = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	taxIDRegex      = regexp.MustCompile(`^[A-Za-z]{5}[0-9]{4}[A-Za-z]$`)
	emailRegex      = regexp.MustCompile(`^` + emailPart + `+@` + emailPart + `+\.` + emailPart + `+$`)
)

// emailPart is any rune except '@' and whitespace, Unicode spaces and BOM included
const emailPart = `[^@\s\x0B\p{Z}\x{FEFF}]`

// fieldRule is the acceptance rule for one form field. serverMessage is
// returned by API operations, formMessage by step validation.
type fieldRule struct {
	check         func(string) bool
	serverMessage string
	formMessage   string
}

func minTrimmedLength(n int) func(string) bool {
	return func(s string) bool {
		return utf8.RuneCountInString(strings.TrimSpace(s)) >= n
	}
}

var fieldRules = map[string]fieldRule{
	models.FieldIDNumber: {
		check:         idNumberRegex.MatchString,
		serverMessage: "Invalid Aadhaar",
		formMessage:   "Enter a valid 12-digit Aadhaar",
	},
	models.FieldFullName: {
		check:         minTrimmedLength(3),
		serverMessage: "Invalid name",
		formMessage:   "Enter full name",
	},
	models.FieldPhone: {
		check:         phoneRegex.MatchString,
		serverMessage: "Invalid mobile",
		formMessage:   "Enter a valid 10-digit mobile",
	},
	models.FieldPostalCode: {
		check:         postalCodeRegex.MatchString,
		serverMessage: "Invalid PIN",
		formMessage:   "Enter a valid 6-digit PIN code",
	},
	models.FieldCity: {
		check:         minTrimmedLength(2),
		serverMessage: "City/State required",
		formMessage:   "City required",
	},
	models.FieldRegion: {
		check:         minTrimmedLength(2),
		serverMessage: "City/State required",
		formMessage:   "State required",
	},
	models.FieldTaxID: {
		check:         taxIDRegex.MatchString,
		serverMessage: "Invalid PAN",
		formMessage:   "Invalid PAN format",
	},
	models.FieldEmail: {
		check:         emailRegex.MatchString,
		serverMessage: "Invalid email",
		formMessage:   "Enter a valid email",
	},
}

// otpRequestFields are checked, in order, before an OTP is issued
var otpRequestFields = []string{models.FieldIDNumber, models.FieldFullName, models.FieldPhone}

// registrationFields are checked, in order, before a record is stored
var registrationFields = []string{
	models.FieldIDNumber,
	models.FieldFullName,
	models.FieldPhone,
	models.FieldPostalCode,
	models.FieldCity,
	models.FieldRegion,
	models.FieldTaxID,
	models.FieldEmail,
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool                     `json:"is_valid"`
	Errors  []models.ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []models.ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, models.ValidationError{
		Field:   field,
		Message: message,
	})
}

// FirstError returns the first recorded error, or nil when valid
func (vr *ValidationResult) FirstError() *models.ValidationError {
	if vr.IsValid || len(vr.Errors) == 0 {
		return nil
	}
	err := vr.Errors[0]
	return &err
}

// ValidateField checks a single raw form value. It reports ok=false for
// unknown field names.
func ValidateField(field, value string) (message string, ok bool) {
	rule, known := fieldRules[field]
	if !known {
		return "Unknown field", false
	}
	if !rule.check(value) {
		return rule.formMessage, false
	}
	return "", true
}

// ValidateOTPRequest re-validates the identity fields before an OTP is
// issued. Only the first failing field is reported.
func ValidateOTPRequest(req models.SendOTPRequest) *ValidationResult {
	values := map[string]string{
		models.FieldIDNumber: req.IDNumber,
		models.FieldFullName: req.FullName,
		models.FieldPhone:    req.Phone,
	}
	return validateFirst(values, otpRequestFields)
}

// ValidateRegistration re-validates all eight fields of a record before it
// is stored. Only the first failing field is reported.
func ValidateRegistration(record models.RegistrationRecord) *ValidationResult {
	return validateFirst(recordValues(record), registrationFields)
}

// ValidateStep checks every field of a wizard step and reports all failures,
// so a client can gate the "next" button on IsValid.
func ValidateStep(step models.WizardStep, record models.RegistrationRecord) *ValidationResult {
	result := NewValidationResult()
	fields, ok := models.StepFields[step]
	if !ok {
		result.AddError("step", "Unknown step")
		return result
	}

	values := recordValues(record)
	for _, field := range fields {
		rule := fieldRules[field]
		if !rule.check(values[field]) {
			result.AddError(field, rule.formMessage)
		}
	}
	return result
}

func validateFirst(values map[string]string, fields []string) *ValidationResult {
	result := NewValidationResult()
	for _, field := range fields {
		rule := fieldRules[field]
		if !rule.check(values[field]) {
			result.AddError(field, rule.serverMessage)
			return result
		}
	}
	return result
}

func recordValues(r models.RegistrationRecord) map[string]string {
	return map[string]string{
		models.FieldIDNumber:   r.IDNumber,
		models.FieldFullName:   r.FullName,
		models.FieldPhone:      r.Phone,
		models.FieldPostalCode: r.PostalCode,
		models.FieldCity:       r.City,
		models.FieldRegion:     r.Region,
		models.FieldTaxID:      r.TaxID,
		models.FieldEmail:      r.Email,
	}
}

// SanitizeString removes leading/trailing whitespace
func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}

// SanitizeRecord normalizes a validated record for storage: free-text fields
// are trimmed, the PAN is upper-cased and the email lower-cased.
func SanitizeRecord(r models.RegistrationRecord) models.RegistrationRecord {
	return models.RegistrationRecord{
		IDNumber:   SanitizeString(r.IDNumber),
		FullName:   SanitizeString(r.FullName),
		Phone:      SanitizeString(r.Phone),
		PostalCode: SanitizeString(r.PostalCode),
		City:       SanitizeString(r.City),
		Region:     SanitizeString(r.Region),
		TaxID:      strings.ToUpper(SanitizeString(r.TaxID)),
		Email:      strings.ToLower(SanitizeString(r.Email)),
	}
}
