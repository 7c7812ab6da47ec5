package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/udyam-reg/app-udyam/internal/logging"
	"github.com/udyam-reg/app-udyam/internal/models"
	"github.com/udyam-reg/app-udyam/internal/observability"
	"github.com/udyam-reg/app-udyam/internal/utils"
	"go.uber.org/zap"
)

// RegistrationService accepts finalized registrations
type RegistrationService struct {
	store  SubmissionStore
	logger *logging.SafeLogger

	// verifiedPhones is nil unless submissions must come from a phone that
	// just passed OTP verification
	verifiedPhones   VerifiedPhoneStore
	verifiedPhoneTTL time.Duration
}

// NewRegistrationService creates a registration service. Pass a nil
// verifiedPhones to accept submissions without a prior OTP verification.
func NewRegistrationService(store SubmissionStore, verifiedPhones VerifiedPhoneStore, verifiedPhoneTTL time.Duration, logger *logging.SafeLogger) *RegistrationService {
	return &RegistrationService{
		store:            store,
		logger:           logger,
		verifiedPhones:   verifiedPhones,
		verifiedPhoneTTL: verifiedPhoneTTL,
	}
}

// Submit validates all eight fields and appends the record to the store.
// An invalid record returns a *models.ValidationError and nothing is written.
func (s *RegistrationService) Submit(ctx context.Context, record models.RegistrationRecord) error {
	ctx, span, cleanup := utils.TraceOperation(ctx, "registration.submit", nil)
	defer cleanup()

	if verr := utils.ValidateRegistration(record).FirstError(); verr != nil {
		observability.Submissions.WithLabelValues("invalid").Inc()
		s.logger.Debug("submission rejected", zap.String("field", verr.Field))
		return verr
	}

	if s.verifiedPhones != nil {
		verified, err := s.verifiedPhones.Consume(ctx, record.Phone)
		if err != nil {
			utils.RecordErrorInSpan(span, err, nil)
			observability.Submissions.WithLabelValues("error").Inc()
			return fmt.Errorf("failed to check verified phone: %w", err)
		}
		if !verified {
			observability.Submissions.WithLabelValues("unverified").Inc()
			return models.ErrPhoneNotVerified
		}
	}

	record = utils.SanitizeRecord(record)
	if err := s.store.Append(ctx, record); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		observability.Submissions.WithLabelValues("error").Inc()
		s.logger.Error("failed to save submission",
			zap.String("aadhaar", observability.MaskIDNumber(record.IDNumber)),
			zap.Error(err))
		s.restoreVerifiedMark(ctx, record.Phone)
		if !errors.Is(err, models.ErrPersistence) {
			err = fmt.Errorf("%w: %v", models.ErrPersistence, err)
		}
		return err
	}

	observability.Submissions.WithLabelValues("success").Inc()
	s.logger.Info("registration saved",
		zap.String("aadhaar", observability.MaskIDNumber(record.IDNumber)),
		zap.String("mobile", observability.MaskPhone(record.Phone)),
		zap.String("pan", observability.MaskTaxID(record.TaxID)))
	return nil
}

// restoreVerifiedMark gives the phone its mark back after a failed write so
// the user can retry without a new OTP.
func (s *RegistrationService) restoreVerifiedMark(ctx context.Context, phone string) {
	if s.verifiedPhones == nil {
		return
	}
	if err := s.verifiedPhones.Mark(ctx, phone, s.verifiedPhoneTTL); err != nil {
		s.logger.Warn("failed to restore verified phone mark", zap.Error(err))
	}
}

// Count returns the number of stored registrations
func (s *RegistrationService) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}
