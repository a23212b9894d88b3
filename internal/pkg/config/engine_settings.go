package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/validators"
)

// digestSizes maps the supported hash algorithms to their output length in bytes.
var digestSizes = map[string]int{
	cryptoalg.HashSHA3256: 32,
	cryptoalg.HashSHA3512: 64,
	cryptoalg.HashSHA256:  32,
	cryptoalg.HashSHA512:  64,
}

// EngineSettings configures prime generation and the hash used by OAEP and signatures.
type EngineSettings struct {
	PrimeBits     uint   `mapstructure:"prime_bits" validate:"required,primebits"`
	Rounds        uint   `mapstructure:"rounds" validate:"required,min=1,max=64"`
	HashAlgorithm string `mapstructure:"hash_algorithm" validate:"required,oneof=sha3-256 sha3-512 sha256 sha512"`
}

// DefaultEngineSettings returns 1024-bit primes, 5 Miller-Rabin rounds and SHA3-256.
func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		PrimeBits:     cryptoalg.DefaultPrimeBits,
		Rounds:        cryptoalg.DefaultRounds,
		HashAlgorithm: cryptoalg.HashSHA3256,
	}
}

// Validate checks field constraints and that the resulting modulus can carry an OAEP block.
func (s *EngineSettings) Validate() error {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for EngineSettings: %w", err)
	}

	// n = p*q has 2*PrimeBits-1 or 2*PrimeBits bits
	modulusBytes := int(2*s.PrimeBits+7) / 8
	hLen := digestSizes[s.HashAlgorithm]
	if modulusBytes < 2*hLen+2 {
		return fmt.Errorf("modulus of %d bytes is too small for OAEP with %s", modulusBytes, s.HashAlgorithm)
	}

	return nil
}
