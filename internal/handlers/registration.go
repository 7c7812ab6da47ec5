package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/udyam-reg/app-udyam/internal/logging"
	"github.com/udyam-reg/app-udyam/internal/models"
	"github.com/udyam-reg/app-udyam/internal/services"
	"github.com/udyam-reg/app-udyam/internal/utils"
	"go.uber.org/zap"
)

// User-facing messages
const (
	msgInvalidBody       = "Invalid request body"
	msgOTPSent           = "OTP sent successfully (demo)"
	msgOTPSentSMS        = "OTP sent successfully"
	msgOTPSendFailed     = "Failed to send OTP"
	msgOTPNotFound       = "No OTP generated"
	msgOTPMismatch       = "Incorrect OTP"
	msgOTPExpired        = "OTP expired"
	msgOTPTooMany        = "Too many incorrect attempts"
	msgOTPVerified       = "OTP verified successfully"
	msgPhoneNotVerified  = "Mobile number not verified"
	msgSubmitted         = "Form submitted and saved to CSV!"
	msgPersistenceFailed = "Error saving to CSV."
	msgInternalError     = "Internal server error"
)

// RegistrationHandlers serves the registration wizard API
type RegistrationHandlers struct {
	logger       *logging.SafeLogger
	otp          *services.OTPService
	registration *services.RegistrationService
}

// NewRegistrationHandlers creates a new registration handlers instance
func NewRegistrationHandlers(logger *logging.SafeLogger, otp *services.OTPService, registration *services.RegistrationService) *RegistrationHandlers {
	return &RegistrationHandlers{
		logger:       logger,
		otp:          otp,
		registration: registration,
	}
}

// SendOTP godoc
// @Summary Send OTP
// @Description Validates Aadhaar, name and mobile, then issues a 6-digit OTP for the mobile. In demo mode the code is returned in the response.
// @Tags registration
// @Accept json
// @Produce json
// @Param data body models.SendOTPRequest true "Identity fields"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/send-otp [post]
func (h *RegistrationHandlers) SendOTP(c *gin.Context) {
	var req models.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{Message: msgInvalidBody})
		return
	}

	echo, err := h.otp.RequestOTP(c.Request.Context(), req)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, models.APIResponse{Message: verr.Message})
		case errors.Is(err, models.ErrOTPDelivery):
			c.JSON(http.StatusInternalServerError, models.APIResponse{Message: msgOTPSendFailed})
		default:
			h.logger.Error("failed to issue otp", zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.APIResponse{Message: msgInternalError})
		}
		return
	}

	message := msgOTPSent
	if echo == "" {
		message = msgOTPSentSMS
	}
	c.JSON(http.StatusOK, models.APIResponse{Success: true, Message: message, OTP: echo})
}

// VerifyOTP godoc
// @Summary Verify OTP
// @Description Checks the code issued for a mobile. A correct code is consumed.
// @Tags registration
// @Accept json
// @Produce json
// @Param data body models.VerifyOTPRequest true "Mobile and code"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/verify-otp [post]
func (h *RegistrationHandlers) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{Message: msgInvalidBody})
		return
	}

	err := h.otp.VerifyOTP(c.Request.Context(), req.Phone, req.OTP)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.APIResponse{Success: true, Message: msgOTPVerified})
	case errors.Is(err, models.ErrOTPNotFound):
		c.JSON(http.StatusBadRequest, models.APIResponse{Message: msgOTPNotFound})
	case errors.Is(err, models.ErrOTPMismatch):
		c.JSON(http.StatusBadRequest, models.APIResponse{Message: msgOTPMismatch})
	case errors.Is(err, models.ErrOTPExpired):
		c.JSON(http.StatusBadRequest, models.APIResponse{Message: msgOTPExpired})
	case errors.Is(err, models.ErrOTPTooManyAttempts):
		c.JSON(http.StatusBadRequest, models.APIResponse{Message: msgOTPTooMany})
	default:
		h.logger.Error("failed to verify otp", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{Message: msgInternalError})
	}
}

// Submit godoc
// @Summary Submit registration
// @Description Validates all eight fields and appends the registration to the submissions log.
// @Tags registration
// @Accept json
// @Produce json
// @Param data body models.RegistrationRecord true "Registration"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/submit [post]
func (h *RegistrationHandlers) Submit(c *gin.Context) {
	var record models.RegistrationRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{Message: msgInvalidBody})
		return
	}

	err := h.registration.Submit(c.Request.Context(), record)
	var verr *models.ValidationError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.APIResponse{Success: true, Message: msgSubmitted})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.APIResponse{Message: verr.Message})
	case errors.Is(err, models.ErrPhoneNotVerified):
		c.JSON(http.StatusBadRequest, models.APIResponse{Message: msgPhoneNotVerified})
	case errors.Is(err, models.ErrPersistence):
		c.JSON(http.StatusInternalServerError, models.APIResponse{Message: msgPersistenceFailed})
	default:
		h.logger.Error("failed to submit registration", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{Message: msgInternalError})
	}
}

// ValidateStep godoc
// @Summary Validate wizard step
// @Description Checks every field of a wizard step and reports each failure with the form message. Fields of other steps are ignored.
// @Tags registration
// @Accept json
// @Produce json
// @Param step path int true "Wizard step (1 or 2)"
// @Param data body models.RegistrationRecord true "Form values so far"
// @Success 200 {object} models.StepValidationResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/validate/step/{step} [post]
func (h *RegistrationHandlers) ValidateStep(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("step"))
	step := models.WizardStep(n)
	if err != nil || !step.Valid() {
		c.JSON(http.StatusNotFound, models.APIResponse{Message: "Unknown step"})
		return
	}

	var record models.RegistrationRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{Message: msgInvalidBody})
		return
	}

	_, span, cleanup := utils.TraceValidationOperation(c.Request.Context(), "step")
	defer cleanup()

	result := utils.ValidateStep(step, record)
	utils.AddSpanAttribute(span, "validation.step", n)
	utils.AddSpanAttribute(span, "validation.valid", result.IsValid)
	c.JSON(http.StatusOK, models.StepValidationResponse{
		Success: result.IsValid,
		Step:    step,
		Errors:  result.Errors,
	})
}
