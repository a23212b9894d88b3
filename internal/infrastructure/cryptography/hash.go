package cryptography

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
)

// NewHashFunc resolves a configured hash algorithm name. An empty name selects SHA3-256.
func NewHashFunc(algorithm string) (cryptoalg.HashFunc, error) {
	switch algorithm {
	case cryptoalg.HashSHA3256, "":
		return sha3.New256, nil
	case cryptoalg.HashSHA3512:
		return sha3.New512, nil
	case cryptoalg.HashSHA256:
		return sha256.New, nil
	case cryptoalg.HashSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %s", algorithm)
	}
}
