package cryptography

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbookrsa"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
	"github.com/google/uuid"
)

// textbookRSAProcessor struct that implements the TextbookRSAProcessor interface
type textbookRSAProcessor struct {
	maxExponentAttempts int
	logger              logger.Logger

	// rng is not safe for concurrent use; mu serializes draws.
	mu  sync.Mutex
	rng numtheory.Rand
}

// NewTextbookRSAProcessor creates a processor drawing primes and exponents from rng.
// Pass a seeded source for reproducible key generation.
func NewTextbookRSAProcessor(settings *config.GeneratorSettings, rng numtheory.Rand, logger logger.Logger) (textbookrsa.TextbookRSAProcessor, error) {
	if settings == nil {
		return nil, errors.New("generator settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator settings: %w", err)
	}
	if rng == nil {
		return nil, errors.New("random source cannot be nil")
	}

	return &textbookRSAProcessor{
		maxExponentAttempts: settings.MaxExponentAttempts,
		logger:              logger,
		rng:                 rng,
	}, nil
}

// GenerateKeyPair draws p and q from [lower, upper], then a public exponent coprime to
// the totient and its inverse as the private exponent.
func (r *textbookRSAProcessor) GenerateKeyPair(lower, upper int64) (*textbookrsa.KeyPair, error) {
	if lower > upper {
		return nil, fmt.Errorf("%w: lower bound %d exceeds upper bound %d", textbookrsa.ErrInvalidRange, lower, upper)
	}

	if lower > numtheory.SqrtMaxInt64 {
		return nil, fmt.Errorf("%w: lower bound %d exceeds %d", textbookrsa.ErrPrimeBoundTooLarge, lower, int64(numtheory.SqrtMaxInt64))
	}

	primes := numtheory.PrimesInRange(lower, upper)
	if len(primes) == 0 {
		return nil, fmt.Errorf("%w: [%d, %d]", textbookrsa.ErrNoPrimeInRange, lower, upper)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, _ := numtheory.ChoosePrime(r.rng, primes)
	q, _ := numtheory.ChoosePrime(r.rng, primes)
	if p == q {
		return nil, fmt.Errorf("%w: p = q = %d", textbookrsa.ErrEqualPrimes, p)
	}
	if p > math.MaxInt64/q {
		return nil, fmt.Errorf("%w: p = %d, q = %d", textbookrsa.ErrRangeTooLarge, p, q)
	}

	n := p * q
	phi := (p - 1) * (q - 1)

	e, err := r.drawCoprimeExponent(phi)
	if err != nil {
		return nil, err
	}

	d, ok := numtheory.ModInverse(e, phi)
	if !ok || d == 0 {
		return nil, fmt.Errorf("%w: e = %d, phi = %d", textbookrsa.ErrNoModularInverse, e, phi)
	}
	if d == e {
		return nil, fmt.Errorf("%w: e = d = %d", textbookrsa.ErrSelfInverseExponent, e)
	}

	keyPair := &textbookrsa.KeyPair{
		ID:      uuid.New().String(),
		Public:  textbookrsa.PublicKey{E: e, N: n},
		Private: textbookrsa.PrivateKey{D: d, N: n},
	}

	r.logger.Info("Generated textbook RSA key pair ", keyPair.ID, " with n ", n)
	return keyPair, nil
}

// drawCoprimeExponent samples e uniformly from [2, phi-1] until gcd(e, phi) = 1.
// The caller must hold r.mu.
func (r *textbookRSAProcessor) drawCoprimeExponent(phi int64) (int64, error) {
	span := phi - textbookrsa.MinExponent
	if span < 1 {
		return 0, fmt.Errorf("%w: exponent interval [2, %d] is empty", textbookrsa.ErrNoCoprimeExponent, phi-1)
	}

	for attempt := 1; attempt <= r.maxExponentAttempts; attempt++ {
		e := textbookrsa.MinExponent + r.rng.Int63n(span)
		if numtheory.GCD(e, phi) == 1 {
			r.logger.Debug("Found exponent coprime to totient after ", attempt, " draws")
			return e, nil
		}
	}

	return 0, fmt.Errorf("%w: gave up after %d draws for phi = %d", textbookrsa.ErrNoCoprimeExponent, r.maxExponentAttempts, phi)
}

// Encrypt computes message^e mod n.
func (r *textbookRSAProcessor) Encrypt(message int64, publicKey textbookrsa.PublicKey) (int64, error) {
	if err := checkOperands(message, publicKey.E, publicKey.N); err != nil {
		return 0, fmt.Errorf("failed to encrypt message: %w", err)
	}

	cipherText, ok := numtheory.ModExp(message, publicKey.E, publicKey.N)
	if !ok {
		return 0, fmt.Errorf("failed to encrypt message: %w", textbookrsa.ErrInvalidKey)
	}
	r.logger.Debug("Textbook RSA encryption succeeded")
	return cipherText, nil
}

// Decrypt computes ciphertext^d mod n.
func (r *textbookRSAProcessor) Decrypt(ciphertext int64, privateKey textbookrsa.PrivateKey) (int64, error) {
	if err := checkOperands(ciphertext, privateKey.D, privateKey.N); err != nil {
		return 0, fmt.Errorf("failed to decrypt message: %w", err)
	}

	plainText, ok := numtheory.ModExp(ciphertext, privateKey.D, privateKey.N)
	if !ok {
		return 0, fmt.Errorf("failed to decrypt message: %w", textbookrsa.ErrInvalidKey)
	}
	r.logger.Debug("Textbook RSA decryption succeeded")
	return plainText, nil
}

// checkOperands rejects malformed keys and values outside [0, modulus).
func checkOperands(value, exponent, modulus int64) error {
	if modulus <= 0 {
		return fmt.Errorf("%w: modulus must be positive, got %d", textbookrsa.ErrInvalidKey, modulus)
	}
	if exponent < 0 {
		return fmt.Errorf("%w: exponent must be non-negative, got %d", textbookrsa.ErrInvalidKey, exponent)
	}
	if value < 0 {
		return &textbookrsa.InvalidMessageError{Reason: textbookrsa.ReasonNegative, Message: value, Modulus: modulus}
	}
	if value >= modulus {
		return &textbookrsa.InvalidMessageError{Reason: textbookrsa.ReasonNotBelowModulus, Message: value, Modulus: modulus}
	}
	return nil
}
