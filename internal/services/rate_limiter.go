package services

import (
	"context"
	"sync"
	"time"

	"github.com/udyam-reg/app-udyam/internal/logging"
	"go.uber.org/zap"
)

// RateLimiter implements a token bucket rate limiter
type RateLimiter struct {
	tokens     int
	maxTokens  int
	refillRate time.Duration
	lastRefill time.Time
	mutex      sync.Mutex
	now        func() time.Time
	logger     *logging.SafeLogger
}

// NewRateLimiter creates a new token bucket rate limiter that adds one token
// every refillRate, up to maxTokens.
func NewRateLimiter(maxTokens int, refillRate time.Duration, logger *logging.SafeLogger) *RateLimiter {
	return &RateLimiter{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
		now:        time.Now,
		logger:     logger,
	}
}

// NewPerMinuteRateLimiter allows bursts of up to perMinute requests and
// refills evenly over one minute.
func NewPerMinuteRateLimiter(perMinute int, logger *logging.SafeLogger) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return NewRateLimiter(perMinute, time.Minute/time.Duration(perMinute), logger)
}

// Allow checks if a request should be allowed based on rate limiting
func (rl *RateLimiter) Allow(ctx context.Context, operation string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	elapsed := now.Sub(rl.lastRefill)

	tokensToAdd := int(elapsed / rl.refillRate)
	if tokensToAdd > 0 {
		rl.tokens += tokensToAdd
		if rl.tokens > rl.maxTokens {
			rl.tokens = rl.maxTokens
		}
		// carry the remainder so slow trickles still earn tokens
		rl.lastRefill = rl.lastRefill.Add(time.Duration(tokensToAdd) * rl.refillRate)

		rl.logger.Debug("rate limiter tokens refilled",
			zap.String("operation", operation),
			zap.Int("tokens_added", tokensToAdd),
			zap.Int("current_tokens", rl.tokens))
	}

	if rl.tokens > 0 {
		rl.tokens--
		return true
	}

	rl.logger.Warn("rate limiter rejected request",
		zap.String("operation", operation),
		zap.Int("max_tokens", rl.maxTokens))
	return false
}

// GetStatus returns the current and maximum token counts
func (rl *RateLimiter) GetStatus() (int, int) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	return rl.tokens, rl.maxTokens
}
