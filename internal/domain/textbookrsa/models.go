package textbookrsa

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PublicKey is the encryption half (e, n) of a textbook RSA key pair.
type PublicKey struct {
	E int64 `json:"e" validate:"gt=0"`
	N int64 `json:"n" validate:"gt=0"`
}

// PrivateKey is the decryption half (d, n) of a textbook RSA key pair.
type PrivateKey struct {
	D int64 `json:"d" validate:"gt=0"`
	N int64 `json:"n" validate:"gt=0"`
}

// KeyPair holds a public and private key derived from the same primes p and q.
// The keys are only meaningful together; mixing moduli yields garbage, not an error.
type KeyPair struct {
	ID      string     `json:"id" validate:"required,uuid4"`
	Public  PublicKey  `json:"public_key"`
	Private PrivateKey `json:"private_key"`
}

// String renders the key in the (e, n) notation.
func (k PublicKey) String() string {
	return fmt.Sprintf("(%d, %d)", k.E, k.N)
}

// String renders the key in the (d, n) notation.
func (k PrivateKey) String() string {
	return fmt.Sprintf("(%d, %d)", k.D, k.N)
}

// Validate checks that both keys are well formed and share the same modulus.
func (kp *KeyPair) Validate() error {
	validate := validator.New()

	err := validate.Struct(kp)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	if kp.Public.N != kp.Private.N {
		return fmt.Errorf("validation failed: public modulus %d does not match private modulus %d", kp.Public.N, kp.Private.N)
	}

	return nil
}
