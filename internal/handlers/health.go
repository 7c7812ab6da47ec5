package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/udyam-reg/app-udyam/internal/logging"
	"github.com/udyam-reg/app-udyam/internal/models"
	"github.com/udyam-reg/app-udyam/internal/redisclient"
	"github.com/udyam-reg/app-udyam/internal/services"
	"github.com/udyam-reg/app-udyam/internal/utils"
	"go.uber.org/zap"
)

// HealthHandlers reports service health
type HealthHandlers struct {
	logger       *logging.SafeLogger
	redis        *redisclient.Client
	registration *services.RegistrationService
}

// NewHealthHandlers creates a new health handlers instance. redis may be nil
// when Redis is not configured.
func NewHealthHandlers(logger *logging.SafeLogger, redis *redisclient.Client, registration *services.RegistrationService) *HealthHandlers {
	return &HealthHandlers{logger: logger, redis: redis, registration: registration}
}

// HealthCheck godoc
// @Summary Health check
// @Description Checks Redis (when configured) and the submissions log
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandlers) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	health := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  make(map[string]string),
	}

	if h.redis == nil {
		health.Services["redis"] = "disabled"
	} else {
		_, span, cleanup := utils.TraceExternalService(ctx, "redis", "ping")
		if err := h.redis.Ping(ctx).Err(); err != nil {
			utils.RecordErrorInSpan(span, err, nil)
			h.logger.Error("redis health check failed", zap.Error(err))
			health.Status = "unhealthy"
			health.Services["redis"] = "unhealthy"
		} else {
			health.Services["redis"] = "healthy"
		}
		cleanup()
	}

	count, err := h.registration.Count(ctx)
	if err != nil {
		h.logger.Error("submissions health check failed", zap.Error(err))
		health.Status = "unhealthy"
		health.Services["submissions"] = "unhealthy"
	} else {
		health.Services["submissions"] = "healthy"
		health.Submissions = count
	}

	if health.Status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}
