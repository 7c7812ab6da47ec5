package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/udyam-reg/app-udyam/internal/logging"
	"github.com/udyam-reg/app-udyam/internal/models"
	"github.com/udyam-reg/app-udyam/internal/observability"
	"github.com/udyam-reg/app-udyam/internal/redisclient"
	"github.com/udyam-reg/app-udyam/internal/utils"
	"github.com/udyam-reg/app-udyam/internal/utils/httpclient"
	"go.uber.org/zap"
)

// PincodeService resolves postal codes to city and state through the public
// postal code directory
type PincodeService struct {
	baseURL  string
	client   *http.Client
	cache    *redisclient.Client
	cacheTTL time.Duration
	limiter  *RateLimiter
	logger   *logging.SafeLogger
}

// PincodeOptions configures a PincodeService. Cache and Limiter may be nil.
type PincodeOptions struct {
	BaseURL  string
	Timeout  time.Duration
	Cache    *redisclient.Client
	CacheTTL time.Duration
	Limiter  *RateLimiter
}

// NewPincodeService creates a new postal code lookup service
func NewPincodeService(opts PincodeOptions, logger *logging.SafeLogger) *PincodeService {
	return &PincodeService{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		client:   httpclient.New(opts.Timeout),
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		limiter:  opts.Limiter,
		logger:   logger,
	}
}

func pincodeCacheKey(pincode string) string {
	return fmt.Sprintf("udyam:pincode:%s", pincode)
}

// Lookup returns the locality for pincode. A malformed pincode returns a
// *models.ValidationError; an unknown one, or any directory failure, returns
// an error wrapping models.ErrPincodeNotFound.
func (s *PincodeService) Lookup(ctx context.Context, pincode string) (*models.Locality, error) {
	ctx, span, cleanup := utils.TraceOperation(ctx, "pincode.lookup", map[string]interface{}{
		"pincode": pincode,
	})
	defer cleanup()

	if msg, ok := utils.ValidateField(models.FieldPostalCode, pincode); !ok {
		observability.PincodeLookups.WithLabelValues("invalid").Inc()
		return nil, &models.ValidationError{Field: models.FieldPostalCode, Message: msg}
	}

	if locality := s.fromCache(ctx, pincode); locality != nil {
		observability.PincodeLookups.WithLabelValues("cache_hit").Inc()
		return locality, nil
	}

	if s.limiter != nil && !s.limiter.Allow(ctx, "pincode_lookup") {
		observability.PincodeLookups.WithLabelValues("rate_limited").Inc()
		return nil, models.ErrPincodeRateLimited
	}

	locality, err := s.fetch(ctx, pincode)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		observability.PincodeLookups.WithLabelValues("not_found").Inc()
		s.logger.Debug("pincode lookup failed", zap.String("pincode", pincode), zap.Error(err))
		if !errors.Is(err, models.ErrPincodeNotFound) {
			err = fmt.Errorf("%w: %v", models.ErrPincodeNotFound, err)
		}
		return nil, err
	}

	observability.PincodeLookups.WithLabelValues("success").Inc()
	s.toCache(ctx, locality)
	return locality, nil
}

func (s *PincodeService) fetch(ctx context.Context, pincode string) (*models.Locality, error) {
	ctx, span, cleanup := utils.TraceExternalService(ctx, "postal_directory", "lookup")
	defer cleanup()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/pincode/"+pincode, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	httpclient.InjectTraceHeaders(req)

	start := time.Now()
	resp, err := s.client.Do(req)
	utils.AddTimingToSpan(span, start)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	utils.AddSpanAttribute(span, "http.status_code", resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	var payload []models.PincodeDirectoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode directory response: %w", err)
	}

	return localityFromDirectory(pincode, payload)
}

// localityFromDirectory picks the first post office of a successful answer.
// City is the block, falling back to the district.
func localityFromDirectory(pincode string, payload []models.PincodeDirectoryResponse) (*models.Locality, error) {
	if len(payload) == 0 || payload[0].Status != models.PincodeStatusSuccess || len(payload[0].PostOffice) == 0 {
		return nil, models.ErrPincodeNotFound
	}

	po := payload[0].PostOffice[0]
	city := strings.TrimSpace(po.Block)
	if city == "" || strings.EqualFold(city, "NA") {
		city = strings.TrimSpace(po.District)
	}

	return &models.Locality{
		PostalCode: pincode,
		City:       city,
		Region:     strings.TrimSpace(po.State),
	}, nil
}

func (s *PincodeService) fromCache(ctx context.Context, pincode string) *models.Locality {
	if s.cache == nil {
		return nil
	}

	ctx, _, cleanup := utils.TraceCacheOperation(ctx, "get", pincodeCacheKey(pincode))
	defer cleanup()

	data, err := s.cache.Get(ctx, pincodeCacheKey(pincode)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("pincode cache read failed", zap.Error(err))
		}
		return nil
	}

	var locality models.Locality
	if err := json.Unmarshal([]byte(data), &locality); err != nil {
		s.logger.Warn("discarding corrupt pincode cache entry", zap.String("pincode", pincode), zap.Error(err))
		return nil
	}
	observability.CacheHits.WithLabelValues("pincode").Inc()
	return &locality
}

func (s *PincodeService) toCache(ctx context.Context, locality *models.Locality) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(locality)
	if err != nil {
		return
	}

	ctx, _, cleanup := utils.TraceCacheOperation(ctx, "set", pincodeCacheKey(locality.PostalCode))
	defer cleanup()

	if err := s.cache.Set(ctx, pincodeCacheKey(locality.PostalCode), data, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("pincode cache write failed", zap.Error(err))
	}
}
