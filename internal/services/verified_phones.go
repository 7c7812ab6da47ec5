package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/udyam-reg/app-udyam/internal/redisclient"
)

// VerifiedPhoneStore remembers which phone numbers passed OTP verification
// recently. A mark is single-use.
type VerifiedPhoneStore interface {
	Mark(ctx context.Context, phone string, ttl time.Duration) error
	// Consume removes the mark for phone and reports whether it was present.
	Consume(ctx context.Context, phone string) (bool, error)
}

// MemoryVerifiedPhones is a process-local VerifiedPhoneStore
type MemoryVerifiedPhones struct {
	mu    sync.Mutex
	marks map[string]time.Time // zero means no expiry
	now   func() time.Time
}

// NewMemoryVerifiedPhones creates an empty in-memory verified phone store
func NewMemoryVerifiedPhones() *MemoryVerifiedPhones {
	return &MemoryVerifiedPhones{
		marks: make(map[string]time.Time),
		now:   time.Now,
	}
}

func (s *MemoryVerifiedPhones) Mark(_ context.Context, phone string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.now().Add(ttl)
	}
	s.marks[phone] = expiresAt
	return nil
}

func (s *MemoryVerifiedPhones) Consume(_ context.Context, phone string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.marks[phone]
	if !ok {
		return false, nil
	}
	delete(s.marks, phone)

	if !expiresAt.IsZero() && !s.now().Before(expiresAt) {
		return false, nil
	}
	return true, nil
}

// RedisVerifiedPhones keeps verification marks in Redis with a key TTL
type RedisVerifiedPhones struct {
	redis *redisclient.Client
}

// NewRedisVerifiedPhones creates a verified phone store backed by Redis
func NewRedisVerifiedPhones(client *redisclient.Client) *RedisVerifiedPhones {
	return &RedisVerifiedPhones{redis: client}
}

func verifiedPhoneKey(phone string) string {
	return fmt.Sprintf("udyam:verified:%s", phone)
}

func (s *RedisVerifiedPhones) Mark(ctx context.Context, phone string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.redis.Set(ctx, verifiedPhoneKey(phone), time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark phone as verified: %w", err)
	}
	return nil
}

func (s *RedisVerifiedPhones) Consume(ctx context.Context, phone string) (bool, error) {
	err := s.redis.GetDel(ctx, verifiedPhoneKey(phone)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to consume verified phone mark: %w", err)
	}
	return true, nil
}
