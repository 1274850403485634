package numtheory

import (
	"math/rand"
)

// Rand is the randomness source used for prime and exponent selection.
// *rand.Rand from math/rand satisfies it.
type Rand interface {
	Int63n(n int64) int64
}

// SqrtMaxInt64 is the largest x with x*x <= math.MaxInt64. A product of two primes
// above it cannot be represented as an int64.
const SqrtMaxInt64 = 3037000499

// NewRand returns a deterministic source seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- educational RSA, not a CSPRNG consumer
}

// IsPrime reports whether n is prime using trial division up to floor(sqrt(n)).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for i := int64(2); i <= n/i; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// PrimesInRange returns all primes in the inclusive range [lo, hi] in ascending order.
func PrimesInRange(lo, hi int64) []int64 {
	var primes []int64
	if hi < 2 || lo > hi {
		return primes
	}
	if lo < 2 {
		lo = 2
	}
	for num := lo; num <= hi; num++ {
		if IsPrime(num) {
			primes = append(primes, num)
		}
		if num == hi {
			break
		}
	}
	return primes
}

// RandomPrime picks one prime uniformly at random from [lo, hi].
// The boolean is false when the range contains no prime.
func RandomPrime(rng Rand, lo, hi int64) (int64, bool) {
	return ChoosePrime(rng, PrimesInRange(lo, hi))
}

// ChoosePrime draws one element of primes uniformly, as returned by PrimesInRange.
// The boolean is false when primes is empty.
func ChoosePrime(rng Rand, primes []int64) (int64, bool) {
	if len(primes) == 0 {
		return 0, false
	}
	return primes[rng.Int63n(int64(len(primes)))], true
}
