package utils

import (
	"math/rand"
	"strconv"

	"github.com/udyam-reg/app-udyam/internal/models"
)

// GenerateVerificationCode generates a random 6-digit verification code in
// [100000, 999999]. Codes never start with zero.
func GenerateVerificationCode() string {
	n := models.OTPMinValue + rand.Intn(models.OTPMaxValue-models.OTPMinValue+1)
	return strconv.Itoa(n)
}
