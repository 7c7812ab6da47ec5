package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/udyam-reg/app-udyam/internal/logging"
	"github.com/udyam-reg/app-udyam/internal/models"
	"github.com/udyam-reg/app-udyam/internal/services"
	"go.uber.org/zap"
)

// PincodeHandlers serves postal code autofill
type PincodeHandlers struct {
	logger  *logging.SafeLogger
	service *services.PincodeService
}

// NewPincodeHandlers creates a new pincode handlers instance
func NewPincodeHandlers(logger *logging.SafeLogger, service *services.PincodeService) *PincodeHandlers {
	return &PincodeHandlers{logger: logger, service: service}
}

// Lookup godoc
// @Summary Look up PIN code
// @Description Resolves a 6-digit PIN code to city and state for form autofill. Any directory failure is reported as not found.
// @Tags pincode
// @Produce json
// @Param pincode path string true "6-digit PIN code"
// @Success 200 {object} models.PincodeResponse
// @Failure 400 {object} models.PincodeResponse
// @Failure 404 {object} models.PincodeResponse
// @Failure 429 {object} models.PincodeResponse
// @Router /api/pincode/{pincode} [get]
func (h *PincodeHandlers) Lookup(c *gin.Context) {
	locality, err := h.service.Lookup(c.Request.Context(), c.Param("pincode"))
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, models.PincodeResponse{Message: verr.Message})
		case errors.Is(err, models.ErrPincodeRateLimited):
			c.JSON(http.StatusTooManyRequests, models.PincodeResponse{Message: "Too many PIN code lookups, try again shortly"})
		default:
			h.logger.Debug("no autofill for pincode", zap.Error(err))
			c.JSON(http.StatusNotFound, models.PincodeResponse{Message: "No locality found for PIN code"})
		}
		return
	}

	c.JSON(http.StatusOK, models.PincodeResponse{
		Success: true,
		City:    locality.City,
		Region:  locality.Region,
	})
}
