package cryptography

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/logger"
)

// keyFactory implements cryptoalg.KeyFactory
type keyFactory struct {
	logger logger.Logger
}

// NewKeyFactory creates and returns a new instance of keyFactory
func NewKeyFactory(logger logger.Logger) (cryptoalg.KeyFactory, error) {
	return &keyFactory{
		logger: logger,
	}, nil
}

// DeriveKeyPair derives (e, n) and (d, n) from the primes p and q.
// Primality is not re-checked; distinctness is.
func (f *keyFactory) DeriveKeyPair(p, q *big.Int) (*cryptoalg.KeyPair, error) {
	if p == nil || q == nil || p.Cmp(two) < 0 || q.Cmp(two) < 0 {
		return nil, fmt.Errorf("%w: primes must be at least 2", cryptoalg.ErrInvalidParameters)
	}
	if p.Cmp(q) == 0 {
		return nil, fmt.Errorf("%w: p and q must be distinct", cryptoalg.ErrInvalidParameters)
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)
	e := big.NewInt(cryptoalg.PublicExponent)

	gcd, x, _ := ExtendedGCD(e, phi)
	if gcd.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: e and phi(n) are not coprime, choose other primes", cryptoalg.ErrInvalidParameters)
	}

	// Mod is Euclidean, so d lands in [0, phi)
	d := new(big.Int).Mod(x, phi)

	keyPair := &cryptoalg.KeyPair{
		ID:      uuid.New(),
		Public:  &cryptoalg.PublicKey{E: e, N: n},
		Private: &cryptoalg.PrivateKey{D: d, N: new(big.Int).Set(n)},
	}

	f.logger.Info("Derived RSA key pair ", keyPair.ID.String(), " with ", n.BitLen(), "-bit modulus")
	return keyPair, nil
}

// ExtendedGCD returns g = gcd(a, b) and Bezout coefficients x, y with a*x + b*y = g.
// a and b must be non-negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)
	quotient := new(big.Int)

	for r.Sign() != 0 {
		quotient.Quo(oldR, r)
		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(quotient, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(quotient, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(quotient, t))
	}

	return oldR, oldS, oldT
}
