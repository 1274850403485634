package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbookrsa"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/metrics"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-retry"
)

// primeRange is validated before any search so oversized ranges fail fast.
type primeRange struct {
	Lower int64
	Upper int64 `validate:"primerange"`
}

// keyPairService implements the KeyPairService interface
type keyPairService struct {
	processor textbookrsa.TextbookRSAProcessor
	settings  *config.GeneratorSettings
	validate  *validator.Validate
	logger    logger.Logger
}

// NewKeyPairService creates a new keyPairService instance
func NewKeyPairService(processor textbookrsa.TextbookRSAProcessor, settings *config.GeneratorSettings, logger logger.Logger) (textbookrsa.KeyPairService, error) {
	if processor == nil {
		return nil, errors.New("processor cannot be nil")
	}
	if settings == nil {
		return nil, errors.New("generator settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator settings: %w", err)
	}

	validate := validator.New()
	if err := validate.RegisterValidation(validators.PrimeRangeTag, validators.PrimeRangeValidation); err != nil {
		return nil, fmt.Errorf("failed to register prime range validation: %w", err)
	}

	return &keyPairService{
		processor: processor,
		settings:  settings,
		validate:  validate,
		logger:    logger,
	}, nil
}

// Generate produces a key pair from [lower, upper], retrying up to
// MaxGenerationRetries times when the failure came from an unlucky draw.
// Ranges that are inverted, wider than validators.MaxPrimeRangeSpan or reach above
// numtheory.SqrtMaxInt64 are rejected with ErrInvalidRange before any search.
func (s *keyPairService) Generate(ctx context.Context, lower, upper int64) (*textbookrsa.KeyPair, error) {
	if err := s.validate.Struct(primeRange{Lower: lower, Upper: upper}); err != nil {
		metrics.KeyGenerationFailedCount.WithLabelValues(metrics.GenerationFailureReason(textbookrsa.ErrInvalidRange)).Inc()
		s.logger.Warn("Rejected prime search range [", lower, ", ", upper, "]")
		return nil, fmt.Errorf("failed to generate key pair: %w: [%d, %d] must be ordered, at most %d wide and at most %d",
			textbookrsa.ErrInvalidRange, lower, upper, validators.MaxPrimeRangeSpan, int64(numtheory.SqrtMaxInt64))
	}

	backoff := retry.WithMaxRetries(s.settings.MaxGenerationRetries, retry.NewConstant(s.settings.RetryBackoff))

	var keyPair *textbookrsa.KeyPair
	attempt := 0
	err := retry.Do(ctx, backoff, func(_ context.Context) error {
		attempt++
		kp, err := s.processor.GenerateKeyPair(lower, upper)
		if err != nil {
			metrics.KeyGenerationFailedCount.WithLabelValues(metrics.GenerationFailureReason(err)).Inc()
			if isRetryable(err) {
				s.logger.Debug("Key generation attempt ", attempt, " failed: ", err)
				return retry.RetryableError(err)
			}
			return err
		}
		keyPair = kp
		return nil
	})
	if err != nil {
		s.logger.Warn("Key generation for range [", lower, ", ", upper, "] failed after ", attempt, " attempts: ", err)
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	metrics.KeyPairsGeneratedCount.Inc()
	return keyPair, nil
}

// isRetryable reports whether another draw from the same range might succeed.
func isRetryable(err error) bool {
	switch {
	case errors.Is(err, textbookrsa.ErrPrimeBoundTooLarge):
		return false
	case errors.Is(err, textbookrsa.ErrEqualPrimes),
		errors.Is(err, textbookrsa.ErrRangeTooLarge),
		errors.Is(err, textbookrsa.ErrNoCoprimeExponent),
		errors.Is(err, textbookrsa.ErrNoModularInverse),
		errors.Is(err, textbookrsa.ErrSelfInverseExponent):
		return true
	default:
		return false
	}
}
