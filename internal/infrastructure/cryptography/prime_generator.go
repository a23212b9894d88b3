package cryptography

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/logger"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// primeGenerator implements cryptoalg.PrimeGenerator with Miller-Rabin testing
type primeGenerator struct {
	random io.Reader
	logger logger.Logger
}

// NewPrimeGenerator creates a prime generator drawing candidates and witnesses from random.
// A nil random falls back to crypto/rand.Reader.
func NewPrimeGenerator(random io.Reader, logger logger.Logger) (cryptoalg.PrimeGenerator, error) {
	if random == nil {
		random = rand.Reader
	}
	return &primeGenerator{
		random: random,
		logger: logger,
	}, nil
}

// GenerateLargePrime draws odd bits-bit candidates until one passes every Miller-Rabin round.
// The expected number of candidates is about 0.35*bits; ctx is checked before each one.
func (g *primeGenerator) GenerateLargePrime(ctx context.Context, bits, rounds int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: prime bit length must be at least 2, got %d", cryptoalg.ErrInvalidParameters, bits)
	}
	if rounds < 1 {
		return nil, fmt.Errorf("%w: at least one Miller-Rabin round is required", cryptoalg.ErrInvalidParameters)
	}

	for candidates := 1; ; candidates++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("prime generation stopped after %d candidates: %w", candidates-1, err)
		}

		candidate, err := g.oddCandidate(bits)
		if err != nil {
			return nil, err
		}

		prime, err := g.IsProbablePrime(candidate, rounds)
		if err != nil {
			return nil, err
		}
		if prime {
			g.logger.Debug("Found ", bits, "-bit probable prime after ", candidates, " candidates")
			return candidate, nil
		}
	}
}

// IsProbablePrime reports whether n passes rounds Miller-Rabin rounds, each with a fresh
// witness in [2, n-2]. A composite survives a single round with probability at most 1/4.
func (g *primeGenerator) IsProbablePrime(n *big.Int, rounds int) (bool, error) {
	if rounds < 1 {
		return false, fmt.Errorf("%w: at least one Miller-Rabin round is required", cryptoalg.ErrInvalidParameters)
	}

	switch {
	case n.Cmp(one) <= 0:
		return false, nil
	case n.Cmp(three) <= 0:
		return true, nil
	case n.Bit(0) == 0:
		return false, nil
	}

	nMinus1 := new(big.Int).Sub(n, one)
	nMinus2 := new(big.Int).Sub(n, two)
	d, s := decompose(nMinus1)

	for i := 0; i < rounds; i++ {
		a, err := randomInRange(g.random, two, nMinus2)
		if err != nil {
			return false, err
		}
		if !millerRabinRound(n, nMinus1, d, s, a) {
			return false, nil
		}
	}
	return true, nil
}

// oddCandidate returns a uniformly random integer of exactly bits bits with the lowest bit set.
func (g *primeGenerator) oddCandidate(bits int) (*big.Int, error) {
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return nil, fmt.Errorf("failed to read random prime candidate: %w", err)
	}

	excess := uint(len(buf)*8 - bits)
	buf[0] &= 0xff >> excess
	buf[0] |= 0x80 >> excess
	buf[len(buf)-1] |= 1

	return new(big.Int).SetBytes(buf), nil
}

// decompose writes nMinus1 as d*2^s with d odd.
func decompose(nMinus1 *big.Int) (*big.Int, uint) {
	s := nMinus1.TrailingZeroBits()
	return new(big.Int).Rsh(nMinus1, s), s
}

// millerRabinRound reports whether n passes the strong probable-prime test to base a.
func millerRabinRound(n, nMinus1, d *big.Int, s uint, a *big.Int) bool {
	x := new(big.Int).Exp(a, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}
	for r := uint(1); r < s; r++ {
		x.Mul(x, x).Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
	}
	return false
}

// randomInRange returns a uniform integer in [lo, hi] by rejection sampling.
func randomInRange(random io.Reader, lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, one)

	bitLen := span.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	excess := uint(len(buf)*8 - bitLen)

	v := new(big.Int)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, fmt.Errorf("failed to read random witness: %w", err)
		}
		buf[0] &= 0xff >> excess
		v.SetBytes(buf)
		if v.Cmp(span) < 0 {
			return v.Add(v, lo), nil
		}
	}
}
