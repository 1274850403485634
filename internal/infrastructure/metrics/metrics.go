// Package metrics defines the Prometheus collectors for key generation and cipher operations.
package metrics

import (
	"errors"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbookrsa"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelReason    = "reason"
	labelOperation = "operation"
	labelOutcome   = "outcome"
)

// Outcome label values.
const (
	OutcomeSuccess        = "success"
	OutcomeInvalidMessage = "invalid_message"
	OutcomeInvalidKey     = "invalid_key"
	OutcomeError          = "error"
)

var (
	KeyPairsGeneratedCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "textbook_rsa_key_pairs_generated_count",
			Help: "Number of key pairs generated successfully",
		},
	)
	KeyGenerationFailedCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textbook_rsa_key_generation_failed_count",
			Help: "Number of failed key generation attempts, including retried ones",
		},
		[]string{labelReason},
	)
	CipherOperationsCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textbook_rsa_cipher_operations_count",
			Help: "Number of encrypt and decrypt calls by outcome",
		},
		[]string{labelOperation, labelOutcome},
	)
)

var AllMetrics = []prometheus.Collector{
	KeyPairsGeneratedCount,
	KeyGenerationFailedCount,
	CipherOperationsCount,
}

// Register adds every collector to registerer.
func Register(registerer prometheus.Registerer) error {
	for _, collector := range AllMetrics {
		if err := registerer.Register(collector); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}

// GenerationFailureReason maps a key generation error to its reason label.
func GenerationFailureReason(err error) string {
	switch {
	case errors.Is(err, textbookrsa.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, textbookrsa.ErrNoPrimeInRange):
		return "no_prime_in_range"
	case errors.Is(err, textbookrsa.ErrEqualPrimes):
		return "equal_primes"
	case errors.Is(err, textbookrsa.ErrPrimeBoundTooLarge):
		return "prime_bound_too_large"
	case errors.Is(err, textbookrsa.ErrRangeTooLarge):
		return "range_too_large"
	case errors.Is(err, textbookrsa.ErrNoCoprimeExponent):
		return "no_coprime_exponent"
	case errors.Is(err, textbookrsa.ErrNoModularInverse):
		return "no_modular_inverse"
	case errors.Is(err, textbookrsa.ErrSelfInverseExponent):
		return "self_inverse_exponent"
	default:
		return "other"
	}
}

// CipherOutcome maps the error of an encrypt or decrypt call to its outcome label.
func CipherOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, textbookrsa.ErrInvalidMessage):
		return OutcomeInvalidMessage
	case errors.Is(err, textbookrsa.ErrInvalidKey):
		return OutcomeInvalidKey
	default:
		return OutcomeError
	}
}
