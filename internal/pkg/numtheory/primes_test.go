//go:build unit
// +build unit

package numtheory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sieve marks primes below limit with the Sieve of Eratosthenes.
func sieve(limit int) []bool {
	isPrime := make([]bool, limit+1)
	for i := 2; i <= limit; i++ {
		isPrime[i] = true
	}
	for i := 2; i*i <= limit; i++ {
		if !isPrime[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			isPrime[j] = false
		}
	}
	return isPrime
}

func TestIsPrime_BelowTwo(t *testing.T) {
	for _, n := range []int64{-1000, -7, -2, -1, 0, 1} {
		assert.False(t, IsPrime(n), "IsPrime(%d)", n)
	}
}

func TestIsPrime_MatchesSieve(t *testing.T) {
	const limit = 10000
	expected := sieve(limit)

	for n := 2; n <= limit; n++ {
		require.Equal(t, expected[n], IsPrime(int64(n)), "IsPrime(%d)", n)
	}
}

func TestIsPrime_SquaresOfPrimes(t *testing.T) {
	tests := []struct {
		n        int64
		expected bool
	}{
		{4, false},
		{9, false},
		{25, false},
		{49, false},
		{10201, false}, // 101^2
		{10007, true},
		{1000003, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsPrime(tt.n), "IsPrime(%d)", tt.n)
	}
}

func TestPrimesInRange(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   int64
		expected []int64
	}{
		{"small range", 10, 30, []int64{11, 13, 17, 19, 23, 29}},
		{"inclusive bounds", 11, 13, []int64{11, 13}},
		{"negative lower bound", -10, 5, []int64{2, 3, 5}},
		{"single prime", 2, 2, []int64{2}},
		{"no primes", 24, 28, nil},
		{"inverted range", 30, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrimesInRange(tt.lo, tt.hi))
		})
	}
}

func TestRandomPrime(t *testing.T) {
	rng := NewRand(42)

	t.Run("ReturnsPrimeWithinRange", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			p, ok := RandomPrime(rng, 100, 200)
			require.True(t, ok)
			assert.True(t, IsPrime(p))
			assert.GreaterOrEqual(t, p, int64(100))
			assert.LessOrEqual(t, p, int64(200))
		}
	})

	t.Run("NoPrimeInRange", func(t *testing.T) {
		_, ok := RandomPrime(rng, 24, 28)
		assert.False(t, ok)
	})

	t.Run("RepeatsAreAllowed", func(t *testing.T) {
		first, ok := RandomPrime(rng, 2, 2)
		require.True(t, ok)
		second, ok := RandomPrime(rng, 2, 2)
		require.True(t, ok)
		assert.Equal(t, first, second)
	})

	t.Run("CoversEveryPrime", func(t *testing.T) {
		seen := map[int64]bool{}
		for i := 0; i < 500; i++ {
			p, ok := RandomPrime(rng, 10, 30)
			require.True(t, ok)
			seen[p] = true
		}
		assert.Len(t, seen, 6)
	})
}

func TestRandomPrime_DeterministicForSeed(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 20; i++ {
		pa, _ := RandomPrime(a, 1, 1000)
		pb, _ := RandomPrime(b, 1, 1000)
		assert.Equal(t, pa, pb)
	}
}

func TestChoosePrime(t *testing.T) {
	_, ok := ChoosePrime(NewRand(1), nil)
	assert.False(t, ok)

	primes := []int64{11, 13, 17}
	for i := 0; i < 50; i++ {
		p, ok := ChoosePrime(NewRand(int64(i)), primes)
		require.True(t, ok)
		assert.Contains(t, primes, p)
	}
}

func TestSqrtMaxInt64(t *testing.T) {
	const bound = int64(SqrtMaxInt64)
	assert.LessOrEqual(t, bound, math.MaxInt64/bound)
	assert.Greater(t, bound+1, math.MaxInt64/(bound+1))
}
