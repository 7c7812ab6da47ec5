package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/udyam-reg/app-udyam/internal/config"
	"github.com/udyam-reg/app-udyam/internal/logging"
	"github.com/udyam-reg/app-udyam/internal/observability"
	"go.uber.org/zap"

	_ "github.com/udyam-reg/app-udyam/docs"
)

// @title           Udyam Registration API
// @version         1.0
// @description     Backend for the two-step Udyam registration wizard: Aadhaar and mobile OTP verification, PAN validation, PIN code autofill and submission storage.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5200
// @BasePath  /

// @tag.name registration
// @tag.description Wizard OTP, validation and submission

// @tag.name pincode
// @tag.description PIN code autofill

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() { _ = logging.Logger.Sync() }()

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	if err := config.InitRedis(); err != nil {
		if config.AppConfig.OTPStore == config.OTPStoreRedis {
			logging.Logger.Fatal("redis is required for OTP_STORE=redis", zap.Error(err))
		}
		logging.Logger.Warn("continuing without redis", zap.Error(err))
	}
	defer config.CloseRedis()

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, err := buildDependencies(config.AppConfig, config.Redis, logging.Logger)
	if err != nil {
		logging.Logger.Fatal("failed to build services", zap.Error(err))
	}
	router := newRouter(deps, config.AppConfig.FrontendDir)

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
			zap.String("otp_store", config.AppConfig.OTPStore),
			zap.String("otp_delivery", config.AppConfig.OTPDelivery),
			zap.String("submissions_file", config.AppConfig.SubmissionsFile),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logging.Logger.Info("server exited gracefully")
}
