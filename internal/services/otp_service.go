package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/udyam-reg/app-udyam/internal/logging"
	"github.com/udyam-reg/app-udyam/internal/models"
	"github.com/udyam-reg/app-udyam/internal/observability"
	"github.com/udyam-reg/app-udyam/internal/utils"
	"go.uber.org/zap"
)

// OTPOptions are the OTP gate knobs. Zero values switch a knob off.
type OTPOptions struct {
	// TTL bounds how long an issued code stays valid.
	TTL time.Duration
	// MaxAttempts bounds incorrect submissions per issued code.
	MaxAttempts int
	// VerifiedPhones, when set, receives a mark for every successful
	// verification so submissions can be bound to a verified number.
	VerifiedPhones   VerifiedPhoneStore
	VerifiedPhoneTTL time.Duration
}

// OTPService issues and verifies one-time codes keyed by phone number
type OTPService struct {
	store    OTPStore
	delivery OTPDelivery
	opts     OTPOptions
	logger   *logging.SafeLogger

	// verify is read-modify-write on the store
	mu sync.Mutex

	now      func() time.Time
	generate func() string
}

// NewOTPService creates a new OTP service
func NewOTPService(store OTPStore, delivery OTPDelivery, opts OTPOptions, logger *logging.SafeLogger) *OTPService {
	return &OTPService{
		store:    store,
		delivery: delivery,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
		generate: utils.GenerateVerificationCode,
	}
}

// RequestOTP validates the identity fields, issues a new code for the phone
// (replacing any outstanding one) and delivers it. The returned string is the
// code to show the user when delivery echoes it, otherwise "".
func (s *OTPService) RequestOTP(ctx context.Context, req models.SendOTPRequest) (string, error) {
	ctx, span, cleanup := utils.TraceOperation(ctx, "otp.request", map[string]interface{}{
		"otp.ttl_enabled":      s.opts.TTL > 0,
		"otp.attempts_enabled": s.opts.MaxAttempts > 0,
	})
	defer cleanup()

	if verr := utils.ValidateOTPRequest(req).FirstError(); verr != nil {
		observability.OTPOperations.WithLabelValues("request", "invalid").Inc()
		s.logger.Debug("otp request rejected",
			zap.String("field", verr.Field),
			zap.String("mobile", observability.MaskPhone(req.Phone)))
		return "", verr
	}

	now := s.now()
	entry := models.OTPEntry{
		Code:     s.generate(),
		IssuedAt: now,
	}
	if s.opts.TTL > 0 {
		entry.ExpiresAt = now.Add(s.opts.TTL)
	}

	s.mu.Lock()
	err := s.store.Set(ctx, req.Phone, entry)
	s.mu.Unlock()
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		observability.OTPOperations.WithLabelValues("request", "error").Inc()
		return "", fmt.Errorf("failed to store otp: %w", err)
	}

	echo, err := s.delivery.Deliver(ctx, req.Phone, entry.Code)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		observability.OTPOperations.WithLabelValues("request", "delivery_failed").Inc()
		s.logger.Error("failed to deliver otp",
			zap.String("mobile", observability.MaskPhone(req.Phone)),
			zap.Error(err))
		if delErr := s.discardIfCurrent(ctx, req.Phone, entry); delErr != nil {
			s.logger.Warn("failed to discard undelivered otp", zap.Error(delErr))
		}
		return "", fmt.Errorf("%w: %v", models.ErrOTPDelivery, err)
	}

	observability.OTPOperations.WithLabelValues("request", "success").Inc()
	s.logger.Info("otp issued",
		zap.String("aadhaar", observability.MaskIDNumber(req.IDNumber)),
		zap.String("mobile", observability.MaskPhone(req.Phone)))
	return echo, nil
}

// VerifyOTP checks code against the entry on record for phone. A correct code
// is consumed. A wrong code leaves the entry in place and counts an attempt.
func (s *OTPService) VerifyOTP(ctx context.Context, phone, code string) error {
	ctx, span, cleanup := utils.TraceOperation(ctx, "otp.verify", nil)
	defer cleanup()

	result, consumed, err := s.verify(ctx, phone, code)
	observability.OTPOperations.WithLabelValues("verify", result).Inc()
	if err != nil {
		utils.AddSpanAttribute(span, "otp.result", result)
		s.logger.Debug("otp verification failed",
			zap.String("mobile", observability.MaskPhone(phone)),
			zap.String("result", result))
		return err
	}

	s.logger.Info("otp verified", zap.String("mobile", observability.MaskPhone(phone)))

	if s.opts.VerifiedPhones != nil {
		if err := s.opts.VerifiedPhones.Mark(ctx, phone, s.opts.VerifiedPhoneTTL); err != nil {
			utils.RecordErrorInSpan(span, err, nil)
			if restoreErr := s.restore(ctx, phone, consumed); restoreErr != nil {
				s.logger.Warn("failed to restore consumed otp", zap.Error(restoreErr))
			}
			return fmt.Errorf("failed to record verified phone: %w", err)
		}
	}
	return nil
}

// verify runs the state transition and returns the metric result label. On
// success it also returns the consumed entry.
func (s *OTPService) verify(ctx context.Context, phone, code string) (string, *models.OTPEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.store.Get(ctx, phone)
	if err != nil {
		return "error", nil, fmt.Errorf("failed to read otp: %w", err)
	}
	if entry == nil {
		return "not_found", nil, models.ErrOTPNotFound
	}

	if entry.Expired(s.now()) {
		if err := s.store.Delete(ctx, phone); err != nil {
			return "error", nil, fmt.Errorf("failed to discard expired otp: %w", err)
		}
		return "expired", nil, models.ErrOTPExpired
	}

	if s.opts.MaxAttempts > 0 && entry.Attempts >= s.opts.MaxAttempts {
		if err := s.store.Delete(ctx, phone); err != nil {
			return "error", nil, fmt.Errorf("failed to discard exhausted otp: %w", err)
		}
		return "too_many_attempts", nil, models.ErrOTPTooManyAttempts
	}

	if entry.Code != code {
		entry.Attempts++
		if err := s.store.Set(ctx, phone, *entry); err != nil {
			return "error", nil, fmt.Errorf("failed to record otp attempt: %w", err)
		}
		return "mismatch", nil, models.ErrOTPMismatch
	}

	if err := s.store.Delete(ctx, phone); err != nil {
		return "error", nil, fmt.Errorf("failed to consume otp: %w", err)
	}
	return "success", entry, nil
}

// discardIfCurrent deletes the entry for phone only if it is still the one
// this call issued. A newer code from a concurrent request stays redeemable.
func (s *OTPService) discardIfCurrent(ctx context.Context, phone string, issued models.OTPEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.Get(ctx, phone)
	if err != nil {
		return err
	}
	if current == nil || current.Code != issued.Code || !current.IssuedAt.Equal(issued.IssuedAt) {
		return nil
	}
	return s.store.Delete(ctx, phone)
}

// restore puts a consumed entry back unless a new code was issued meanwhile
func (s *OTPService) restore(ctx context.Context, phone string, entry *models.OTPEntry) error {
	if entry == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.Get(ctx, phone)
	if err != nil {
		return err
	}
	if current != nil {
		return nil
	}
	return s.store.Set(ctx, phone, *entry)
}
