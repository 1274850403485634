package textbookrsa

import (
	"errors"
	"fmt"
)

// ErrKeyGeneration is wrapped by every key generation failure. These failures are
// expected for narrow ranges; callers may retry or widen the range.
var ErrKeyGeneration = errors.New("key generation failed")

var (
	// ErrInvalidRange is returned when the lower bound exceeds the upper bound, or the
	// range is too wide or too high to search.
	ErrInvalidRange = fmt.Errorf("%w: invalid prime search range", ErrKeyGeneration)
	// ErrNoPrimeInRange is returned when the search range contains no prime.
	ErrNoPrimeInRange = fmt.Errorf("%w: no prime in range", ErrKeyGeneration)
	// ErrEqualPrimes is returned when both draws produced the same prime.
	ErrEqualPrimes = fmt.Errorf("%w: p and q are equal", ErrKeyGeneration)
	// ErrRangeTooLarge is returned when p*q does not fit in an int64.
	ErrRangeTooLarge = fmt.Errorf("%w: modulus overflows int64", ErrKeyGeneration)
	// ErrPrimeBoundTooLarge is returned before any search when the lower bound alone
	// makes every product of two primes overflow. It wraps ErrRangeTooLarge.
	ErrPrimeBoundTooLarge = fmt.Errorf("%w: lower bound squared", ErrRangeTooLarge)
	// ErrNoCoprimeExponent is returned when no e coprime to the totient was drawn.
	ErrNoCoprimeExponent = fmt.Errorf("%w: no exponent coprime to totient", ErrKeyGeneration)
	// ErrNoModularInverse is returned when e has no inverse modulo the totient.
	ErrNoModularInverse = fmt.Errorf("%w: exponent has no modular inverse", ErrKeyGeneration)
	// ErrSelfInverseExponent is returned when the private exponent equals the public one.
	ErrSelfInverseExponent = fmt.Errorf("%w: private exponent equals public exponent", ErrKeyGeneration)
)

// ErrInvalidMessage is matched by every *InvalidMessageError.
var ErrInvalidMessage = errors.New("invalid message")

// ErrInvalidKey is returned when a key has a non-positive modulus or a negative exponent.
var ErrInvalidKey = errors.New("invalid key")

// InvalidMessageReason tells apart the ways a message can be rejected.
type InvalidMessageReason string

const (
	// ReasonNegative means the message is not a non-negative integer.
	ReasonNegative InvalidMessageReason = "negative"
	// ReasonNotBelowModulus means the message is greater than or equal to n.
	ReasonNotBelowModulus InvalidMessageReason = "not_below_modulus"
)

// InvalidMessageError reports a plaintext or ciphertext outside [0, n).
type InvalidMessageError struct {
	Reason  InvalidMessageReason
	Message int64
	Modulus int64
}

func (e *InvalidMessageError) Error() string {
	switch e.Reason {
	case ReasonNegative:
		return fmt.Sprintf("message must be a non-negative integer, got %d", e.Message)
	default:
		return fmt.Sprintf("message must be less than n, got %d with n %d", e.Message, e.Modulus)
	}
}

// Is lets errors.Is(err, ErrInvalidMessage) match any reason.
func (e *InvalidMessageError) Is(target error) bool {
	return target == ErrInvalidMessage
}
