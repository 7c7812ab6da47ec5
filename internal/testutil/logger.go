package testutil

import (
	"github.com/udyam-reg/app-udyam/internal/logging"
	"go.uber.org/zap"
)

// NopLogger returns a logger that discards everything.
func NopLogger() *logging.SafeLogger {
	return logging.New(zap.NewNop())
}
