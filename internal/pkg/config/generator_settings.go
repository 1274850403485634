package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults for GeneratorSettings.
const (
	DefaultMaxExponentAttempts  = 10000
	DefaultMaxGenerationRetries = 5
	DefaultRetryBackoff         = time.Millisecond
)

// GeneratorSettings bounds the randomized parts of key generation.
//
// MaxExponentAttempts caps the draws for a public exponent coprime to the totient.
// MaxGenerationRetries is how many times the key pair service retries a failed
// generation (for example when p equals q). Seed makes generation reproducible; zero
// means seed from the clock.
type GeneratorSettings struct {
	MaxExponentAttempts  int           `mapstructure:"max_exponent_attempts" validate:"gte=1,lte=10000000"`
	MaxGenerationRetries uint64        `mapstructure:"max_generation_retries" validate:"lte=1000"`
	RetryBackoff         time.Duration `mapstructure:"retry_backoff" validate:"gt=0"`
	Seed                 int64         `mapstructure:"seed"`
}

// NewGeneratorSettings returns settings populated with the defaults.
func NewGeneratorSettings() *GeneratorSettings {
	return &GeneratorSettings{
		MaxExponentAttempts:  DefaultMaxExponentAttempts,
		MaxGenerationRetries: DefaultMaxGenerationRetries,
		RetryBackoff:         DefaultRetryBackoff,
	}
}

// Validate checks that all fields in GeneratorSettings are valid
func (s *GeneratorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for GeneratorSettings: %w", err)
	}
	return nil
}

// SeedOrNow returns the configured seed, or the current time in nanoseconds when unset.
func (s *GeneratorSettings) SeedOrNow() int64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return time.Now().UnixNano()
}
