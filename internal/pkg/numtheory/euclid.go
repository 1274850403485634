package numtheory

// GCD returns the greatest common divisor of a and b using the iterative
// Euclidean algorithm. GCD(a, 0) is a, so GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModInverse returns the multiplicative inverse of e modulo n, normalized into [0, n).
// The boolean is false when gcd(e, n) > 1 and no inverse exists.
func ModInverse(e, n int64) (int64, bool) {
	t, newT := int64(0), int64(1)
	r, newR := n, e

	for newR != 0 {
		quotient := r / newR
		r, newR = newR, r-quotient*newR
		t, newT = newT, t-quotient*newT
	}

	if r > 1 {
		return 0, false
	}
	if t < 0 {
		t += n
	}
	return t, true
}
