package models

// RegistrationRecord is a finalized two-step registration. JSON names follow
// the wizard's form field names.
type RegistrationRecord struct {
	IDNumber   string `json:"aadhaarNumber" example:"123412341234"`
	FullName   string `json:"entrepreneurName" example:"Asha Rao"`
	Phone      string `json:"mobile" example:"9876543210"`
	PostalCode string `json:"pincode" example:"560001"`
	City       string `json:"city" example:"Bangalore"`
	Region     string `json:"state" example:"Karnataka"`
	TaxID      string `json:"panNumber" example:"ABCDE1234F"`
	Email      string `json:"email" example:"asha@example.com"`
}

// SubmissionHeader is the header row of the submissions log, in column order.
var SubmissionHeader = []string{
	"Aadhaar Number",
	"Name of Entrepreneur",
	"Mobile",
	"PIN Code",
	"City",
	"State",
	"PAN",
	"Email",
}

// Row returns the record's fields in SubmissionHeader order.
func (r RegistrationRecord) Row() []string {
	return []string{
		r.IDNumber,
		r.FullName,
		r.Phone,
		r.PostalCode,
		r.City,
		r.Region,
		r.TaxID,
		r.Email,
	}
}

// SendOTPRequest is the step 1 identity subset needed to issue an OTP.
// Other step 1 fields may be present in the body and are ignored.
type SendOTPRequest struct {
	IDNumber string `json:"aadhaarNumber" example:"123412341234"`
	FullName string `json:"entrepreneurName" example:"Asha Rao"`
	Phone    string `json:"mobile" example:"9876543210"`
}

// VerifyOTPRequest carries the code the user typed for a phone number
type VerifyOTPRequest struct {
	Phone string `json:"mobile" example:"9876543210"`
	OTP   string `json:"otp" example:"483920"`
}

// WizardStep identifies a step of the registration wizard
type WizardStep int

const (
	StepIdentity WizardStep = 1 // Aadhaar & mobile verification
	StepTax      WizardStep = 2 // PAN validation
)

// Valid reports whether s is a known step
func (s WizardStep) Valid() bool {
	return s == StepIdentity || s == StepTax
}

// Form field names, as sent by the wizard
const (
	FieldIDNumber   = "aadhaarNumber"
	FieldFullName   = "entrepreneurName"
	FieldPhone      = "mobile"
	FieldPostalCode = "pincode"
	FieldCity       = "city"
	FieldRegion     = "state"
	FieldTaxID      = "panNumber"
	FieldEmail      = "email"
)

// StepFields lists the fields each step must satisfy before advancing
var StepFields = map[WizardStep][]string{
	StepIdentity: {FieldIDNumber, FieldFullName, FieldPhone, FieldPostalCode, FieldCity, FieldRegion},
	StepTax:      {FieldTaxID, FieldEmail},
}

// WizardState is the client-side state of one wizard session. The server
// never stores it; it is shared so clients and tests agree on the shape.
type WizardState struct {
	Step      WizardStep `json:"step"`
	OTPSent   bool       `json:"otpSent"`
	LastError string     `json:"lastError,omitempty"`
}
