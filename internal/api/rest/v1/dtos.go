package v1

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbookrsa"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// GenerateKeyPairRequest is the body of POST /keys
type GenerateKeyPairRequest struct {
	Lower int64 `json:"lower"`
	Upper int64 `json:"upper" validate:"primerange"`
}

// Validate checks that the prime search range is ordered and not too wide
func (r *GenerateKeyPairRequest) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation(validators.PrimeRangeTag, validators.PrimeRangeValidation); err != nil {
		return fmt.Errorf("failed to register prime range validation: %w", err)
	}

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("upper must be at least lower, at most %d above it and at most %d",
			validators.MaxPrimeRangeSpan, int64(numtheory.SqrtMaxInt64))
	}
	return nil
}

// EncryptRequest is the body of POST /encrypt
type EncryptRequest struct {
	Message *int64 `json:"message" binding:"required"`
	E       *int64 `json:"e" binding:"required"`
	N       *int64 `json:"n" binding:"required"`
}

// PublicKey returns the key described by the request
func (r *EncryptRequest) PublicKey() textbookrsa.PublicKey {
	return textbookrsa.PublicKey{E: *r.E, N: *r.N}
}

// DecryptRequest is the body of POST /decrypt
type DecryptRequest struct {
	Ciphertext *int64 `json:"ciphertext" binding:"required"`
	D          *int64 `json:"d" binding:"required"`
	N          *int64 `json:"n" binding:"required"`
}

// PrivateKey returns the key described by the request
func (r *DecryptRequest) PrivateKey() textbookrsa.PrivateKey {
	return textbookrsa.PrivateKey{D: *r.D, N: *r.N}
}

// KeyPairResponse describes a generated key pair
type KeyPairResponse struct {
	ID         string                 `json:"id"`
	Algorithm  string                 `json:"algorithm"`
	PublicKey  textbookrsa.PublicKey  `json:"public_key"`
	PrivateKey textbookrsa.PrivateKey `json:"private_key"`
}

// CipherResponse carries the result of an encrypt or decrypt call
type CipherResponse struct {
	Result int64 `json:"result"`
}

// ExampleResponse is one worked example with its computed and expected values
type ExampleResponse struct {
	textbookrsa.WorkedExample
	Result int64 `json:"result"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}
