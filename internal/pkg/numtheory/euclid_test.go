//go:build unit
// +build unit

package numtheory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b     int64
		expected int64
	}{
		{48, 18, 6},
		{18, 48, 6},
		{17, 5, 1},
		{7, 0, 7},
		{0, 7, 7},
		{0, 0, 0},
		{192, 7, 1},
		{100, 75, 25},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GCD(tt.a, tt.b), "GCD(%d, %d)", tt.a, tt.b)
	}
}

func TestGCD_Recurrence(t *testing.T) {
	for a := int64(0); a < 60; a++ {
		assert.Equal(t, a, GCD(a, 0))
		for b := int64(1); b < 60; b++ {
			assert.Equal(t, GCD(b, a%b), GCD(a, b), "GCD(%d, %d)", a, b)
		}
	}
}

func TestModInverse(t *testing.T) {
	t.Run("KnownValue", func(t *testing.T) {
		d, ok := ModInverse(3, 11)
		require.True(t, ok)
		assert.Equal(t, int64(4), d)
	})

	t.Run("NotCoprime", func(t *testing.T) {
		_, ok := ModInverse(4, 8)
		assert.False(t, ok)

		_, ok = ModInverse(6, 9)
		assert.False(t, ok)
	})

	t.Run("ZeroHasNoInverse", func(t *testing.T) {
		_, ok := ModInverse(0, 12)
		assert.False(t, ok)
	})

	t.Run("AllCoprimeResidues", func(t *testing.T) {
		for n := int64(2); n < 200; n++ {
			for e := int64(1); e < n; e++ {
				d, ok := ModInverse(e, n)
				if GCD(e, n) != 1 {
					assert.False(t, ok, "ModInverse(%d, %d)", e, n)
					continue
				}
				require.True(t, ok, "ModInverse(%d, %d)", e, n)
				assert.GreaterOrEqual(t, d, int64(0))
				assert.Less(t, d, n)
				assert.Equal(t, int64(1), (e*d)%n, "ModInverse(%d, %d) = %d", e, n, d)
			}
		}
	})
}
