package main

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/udyam-reg/app-udyam/internal/config"
	"github.com/udyam-reg/app-udyam/internal/handlers"
	"github.com/udyam-reg/app-udyam/internal/logging"
	"github.com/udyam-reg/app-udyam/internal/middleware"
	"github.com/udyam-reg/app-udyam/internal/models"
	"github.com/udyam-reg/app-udyam/internal/redisclient"
	"github.com/udyam-reg/app-udyam/internal/services"
	"go.uber.org/zap"
)

var errRedisRequired = errors.New("redis is not connected but OTP_STORE=redis")

// dependencies are the handler sets served by the router
type dependencies struct {
	registration *handlers.RegistrationHandlers
	pincode      *handlers.PincodeHandlers
	health       *handlers.HealthHandlers
}

// buildDependencies wires stores, delivery and services from configuration.
// redis may be nil, in which case in-memory stores are used.
func buildDependencies(cfg *config.Config, redis *redisclient.Client, logger *logging.SafeLogger) (*dependencies, error) {
	var otpStore services.OTPStore = services.NewMemoryOTPStore()
	if cfg.OTPStore == config.OTPStoreRedis {
		if redis == nil {
			return nil, errRedisRequired
		}
		otpStore = services.NewRedisOTPStore(redis)
	}

	var delivery services.OTPDelivery = services.EchoDelivery{}
	if cfg.OTPDelivery == config.OTPDeliverySMS {
		delivery = services.NewSMSDelivery(cfg.SMSGatewayURL, cfg.SMSGatewayToken, cfg.SMSSenderID, nil, logger.With(zap.String("component", "sms")))
	}

	var verifiedPhones services.VerifiedPhoneStore
	if cfg.RequireVerifiedPhone {
		if redis != nil {
			verifiedPhones = services.NewRedisVerifiedPhones(redis)
		} else {
			verifiedPhones = services.NewMemoryVerifiedPhones()
		}
	}

	otp := services.NewOTPService(otpStore, delivery, services.OTPOptions{
		TTL:              cfg.OTPTTL,
		MaxAttempts:      cfg.OTPMaxAttempts,
		VerifiedPhones:   verifiedPhones,
		VerifiedPhoneTTL: cfg.VerifiedPhoneTTL,
	}, logger.With(zap.String("component", "otp")))

	submissions := services.NewCSVSubmissionStore(cfg.SubmissionsFile, logger.With(zap.String("component", "submissions")))
	registration := services.NewRegistrationService(submissions, verifiedPhones, cfg.VerifiedPhoneTTL, logger.With(zap.String("component", "registration")))

	pincode := services.NewPincodeService(services.PincodeOptions{
		BaseURL:  cfg.PincodeAPIURL,
		Timeout:  cfg.PincodeTimeout,
		Cache:    redis,
		CacheTTL: cfg.PincodeCacheTTL,
		Limiter:  services.NewPerMinuteRateLimiter(cfg.PincodeRateLimit, logger),
	}, logger.With(zap.String("component", "pincode")))

	return &dependencies{
		registration: handlers.NewRegistrationHandlers(logger, otp, registration),
		pincode:      handlers.NewPincodeHandlers(logger, pincode),
		health:       handlers.NewHealthHandlers(logger, redis, registration),
	}, nil
}

// newRouter builds the HTTP router. A non-empty frontendDir is served as a
// single-page app for every path the API does not claim.
func newRouter(deps *dependencies, frontendDir string) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		middleware.RequestTiming(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", deps.health.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/send-otp", deps.registration.SendOTP)
		api.POST("/verify-otp", deps.registration.VerifyOTP)
		api.POST("/submit", deps.registration.Submit)
		api.POST("/validate/step/:step", deps.registration.ValidateStep)
		api.GET("/pincode/:pincode", deps.pincode.Lookup)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(frontendHandler(frontendDir))
	return router
}

// frontendHandler serves files from dir, falling back to index.html so
// client-side routes resolve. Unknown /api paths stay JSON 404s.
func frontendHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if dir == "" || strings.HasPrefix(path, "/api/") || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, models.APIResponse{Message: "Not found"})
			return
		}

		file := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}
