package numtheory

import "math/big"

// ModExp returns base^exp mod mod by square-and-multiply on math/big, so no
// intermediate value outgrows mod squared. The boolean is false when mod is not
// positive, or when exp is negative and base has no inverse modulo mod.
func ModExp(base, exp, mod int64) (int64, bool) {
	if mod <= 0 {
		return 0, false
	}
	b := big.NewInt(base)
	result := new(big.Int).Exp(b, big.NewInt(exp), big.NewInt(mod))
	if result == nil {
		return 0, false
	}
	return result.Int64(), true
}
