package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/udyam-reg/app-udyam/internal/testutil"
)

// fakeClock is a manually advanced clock for time-dependent services
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestRateLimiter(maxTokens int, refill time.Duration, clock *fakeClock) *RateLimiter {
	rl := NewRateLimiter(maxTokens, refill, testutil.NopLogger())
	rl.now = clock.Now
	rl.lastRefill = clock.Now()
	return rl
}

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(10, 100*time.Millisecond, testutil.NopLogger())

	tokens, maxTokens := rl.GetStatus()
	assert.Equal(t, 10, tokens)
	assert.Equal(t, 10, maxTokens)
}

func TestNewPerMinuteRateLimiter(t *testing.T) {
	rl := NewPerMinuteRateLimiter(60, testutil.NopLogger())
	assert.Equal(t, time.Second, rl.refillRate)

	rl = NewPerMinuteRateLimiter(0, testutil.NopLogger())
	_, maxTokens := rl.GetStatus()
	assert.Equal(t, 1, maxTokens)
}

func TestRateLimiter_Allow_InitialTokens(t *testing.T) {
	clock := newFakeClock()
	rl := newTestRateLimiter(3, time.Second, clock)
	ctx := context.Background()

	assert.True(t, rl.Allow(ctx, "test_op"))
	assert.True(t, rl.Allow(ctx, "test_op"))
	assert.True(t, rl.Allow(ctx, "test_op"))
	assert.False(t, rl.Allow(ctx, "test_op"), "fourth request should be denied")
}

func TestRateLimiter_Allow_TokenRefill(t *testing.T) {
	clock := newFakeClock()
	rl := newTestRateLimiter(2, time.Second, clock)
	ctx := context.Background()

	rl.Allow(ctx, "test_op")
	rl.Allow(ctx, "test_op")
	assert.False(t, rl.Allow(ctx, "test_op"))

	clock.Advance(time.Second)
	assert.True(t, rl.Allow(ctx, "test_op"))
	assert.False(t, rl.Allow(ctx, "test_op"))
}

func TestRateLimiter_Allow_RefillCappedAtMax(t *testing.T) {
	clock := newFakeClock()
	rl := newTestRateLimiter(3, time.Second, clock)
	ctx := context.Background()

	rl.Allow(ctx, "test_op")
	clock.Advance(time.Hour)
	rl.Allow(ctx, "test_op")

	tokens, maxTokens := rl.GetStatus()
	assert.Equal(t, maxTokens-1, tokens)
}

func TestRateLimiter_Allow_PartialIntervalsAccumulate(t *testing.T) {
	clock := newFakeClock()
	rl := newTestRateLimiter(1, time.Second, clock)
	ctx := context.Background()

	assert.True(t, rl.Allow(ctx, "test_op"))

	clock.Advance(600 * time.Millisecond)
	assert.False(t, rl.Allow(ctx, "test_op"))

	clock.Advance(600 * time.Millisecond)
	assert.True(t, rl.Allow(ctx, "test_op"), "two partial intervals add up to one token")
}

func TestRateLimiter_Concurrent(t *testing.T) {
	clock := newFakeClock()
	rl := newTestRateLimiter(50, time.Hour, clock)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow(ctx, "test_op") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
