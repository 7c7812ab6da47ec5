package utils

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is the region assumed for numbers without a country code
const DefaultPhoneRegion = "IN"

// PhoneComponents represents the parsed components of a phone number
type PhoneComponents struct {
	CountryCode    string `json:"country_code"`
	NationalNumber string `json:"national_number"`
	Full           string `json:"full"`
}

// ParsePhoneNumber parses a phone number, assuming an Indian number when no
// +country prefix is given.
func ParsePhoneNumber(phoneString string) (*PhoneComponents, error) {
	cleanPhone := strings.TrimSpace(phoneString)

	num, err := phonenumbers.Parse(cleanPhone, DefaultPhoneRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return nil, fmt.Errorf("invalid phone number: %s", phoneString)
	}

	return &PhoneComponents{
		CountryCode:    fmt.Sprintf("%d", num.GetCountryCode()),
		NationalNumber: phonenumbers.GetNationalSignificantNumber(num),
		Full:           phonenumbers.Format(num, phonenumbers.E164),
	}, nil
}

// FormatIndianMobileE164 turns a 10-digit mobile into +91XXXXXXXXXX for
// gateways that require E.164.
func FormatIndianMobileE164(mobile string) (string, error) {
	components, err := ParsePhoneNumber(mobile)
	if err != nil {
		return "", err
	}
	return components.Full, nil
}
