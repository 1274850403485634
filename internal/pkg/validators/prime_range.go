// Package validators holds custom go-playground validator functions shared by request DTOs.
package validators

import (
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
	"github.com/go-playground/validator/v10"
)

// MaxPrimeRangeSpan caps upper-lower for requests. Prime search enumerates the whole
// range with trial division, so wide spans are refused before any work starts.
const MaxPrimeRangeSpan = 1_000_000

// PrimeRangeTag is the struct tag name PrimeRangeValidation is registered under.
const PrimeRangeTag = "primerange"

// PrimeRangeValidation validates an upper bound field against the sibling "Lower"
// field: upper must be at least lower and at most numtheory.SqrtMaxInt64, and the span
// at most MaxPrimeRangeSpan.
func PrimeRangeValidation(fl validator.FieldLevel) bool {
	lowerField := fl.Parent().FieldByName("Lower")
	if !lowerField.IsValid() {
		return false
	}

	lower := lowerField.Int()
	upper := fl.Field().Int()

	if upper < lower || upper > numtheory.SqrtMaxInt64 {
		return false
	}
	return upper-lower <= MaxPrimeRangeSpan
}
