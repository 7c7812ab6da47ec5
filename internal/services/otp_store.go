package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/udyam-reg/app-udyam/internal/models"
	"github.com/udyam-reg/app-udyam/internal/redisclient"
)

// OTPStore holds at most one OTP entry per phone number
type OTPStore interface {
	// Get returns the entry for phone, or nil when there is none.
	Get(ctx context.Context, phone string) (*models.OTPEntry, error)
	// Set stores entry for phone, replacing any previous one.
	Set(ctx context.Context, phone string, entry models.OTPEntry) error
	// Delete removes the entry for phone. Deleting a missing entry is not an error.
	Delete(ctx context.Context, phone string) error
}

// MemoryOTPStore is a process-local OTPStore. Entries are lost on restart.
type MemoryOTPStore struct {
	mu      sync.RWMutex
	entries map[string]models.OTPEntry
}

// NewMemoryOTPStore creates an empty in-memory OTP store
func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{entries: make(map[string]models.OTPEntry)}
}

func (s *MemoryOTPStore) Get(_ context.Context, phone string) (*models.OTPEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[phone]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *MemoryOTPStore) Set(_ context.Context, phone string, entry models.OTPEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[phone] = entry
	return nil
}

func (s *MemoryOTPStore) Delete(_ context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, phone)
	return nil
}

// Len returns the number of phones with an outstanding code
func (s *MemoryOTPStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// RedisOTPStore keeps OTP entries in Redis as JSON. Entries with an expiry
// are given a matching key TTL so Redis evicts them on its own.
type RedisOTPStore struct {
	redis *redisclient.Client
}

// NewRedisOTPStore creates an OTP store backed by Redis
func NewRedisOTPStore(client *redisclient.Client) *RedisOTPStore {
	return &RedisOTPStore{redis: client}
}

func otpKey(phone string) string {
	return fmt.Sprintf("udyam:otp:%s", phone)
}

func (s *RedisOTPStore) Get(ctx context.Context, phone string) (*models.OTPEntry, error) {
	data, err := s.redis.Get(ctx, otpKey(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read otp entry: %w", err)
	}

	var entry models.OTPEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, fmt.Errorf("failed to decode otp entry: %w", err)
	}
	return &entry, nil
}

func (s *RedisOTPStore) Set(ctx context.Context, phone string, entry models.OTPEntry) error {
	var ttl time.Duration
	if !entry.ExpiresAt.IsZero() {
		ttl = time.Until(entry.ExpiresAt)
		if ttl <= 0 {
			return s.Delete(ctx, phone)
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode otp entry: %w", err)
	}

	if err := s.redis.Set(ctx, otpKey(phone), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write otp entry: %w", err)
	}
	return nil
}

func (s *RedisOTPStore) Delete(ctx context.Context, phone string) error {
	if err := s.redis.Del(ctx, otpKey(phone)).Err(); err != nil {
		return fmt.Errorf("failed to delete otp entry: %w", err)
	}
	return nil
}
