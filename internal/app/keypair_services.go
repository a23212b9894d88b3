package app

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/logger"
)

// maxKeyPairAttempts bounds how many prime pairs are drawn before giving up.
const maxKeyPairAttempts = 10

// KeyPairService generates complete RSA key pairs from fresh primes.
type KeyPairService interface {
	// GenerateKeyPair draws two distinct primes of primeBits bits and derives a key pair from them.
	GenerateKeyPair(ctx context.Context, primeBits, rounds int) (*cryptoalg.KeyPair, error)
}

// keyPairService implements the KeyPairService interface
type keyPairService struct {
	primes cryptoalg.PrimeGenerator
	keys   cryptoalg.KeyFactory
	logger logger.Logger
}

// NewKeyPairService creates a new keyPairService instance
func NewKeyPairService(primes cryptoalg.PrimeGenerator, keys cryptoalg.KeyFactory, logger logger.Logger) (KeyPairService, error) {
	if primes == nil || keys == nil {
		return nil, fmt.Errorf("prime generator and key factory are required")
	}
	return &keyPairService{
		primes: primes,
		keys:   keys,
		logger: logger,
	}, nil
}

// GenerateKeyPair retries with new primes when p == q or e is not coprime with phi(n).
func (s *keyPairService) GenerateKeyPair(ctx context.Context, primeBits, rounds int) (*cryptoalg.KeyPair, error) {
	for attempt := 1; attempt <= maxKeyPairAttempts; attempt++ {
		p, q, err := s.generatePrimePair(ctx, primeBits, rounds)
		if err != nil {
			return nil, fmt.Errorf("failed to generate primes: %w", err)
		}

		if p.Cmp(q) == 0 {
			s.logger.Debug("Drew identical primes on attempt ", attempt, ", retrying")
			continue
		}

		keyPair, err := s.keys.DeriveKeyPair(p, q)
		if errors.Is(err, cryptoalg.ErrInvalidParameters) {
			s.logger.Debug("Prime pair rejected on attempt ", attempt, ": ", err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to derive key pair: %w", err)
		}

		s.logger.Info(fmt.Sprintf("Generated %d-bit RSA key pair %s after %d attempt(s)", keyPair.ModulusBits(), keyPair.ID, attempt))
		return keyPair, nil
	}

	return nil, fmt.Errorf("%w: no usable prime pair after %d attempts", cryptoalg.ErrInvalidParameters, maxKeyPairAttempts)
}

// generatePrimePair searches for p and q concurrently; the first failure cancels the other search.
func (s *keyPairService) generatePrimePair(ctx context.Context, primeBits, rounds int) (*big.Int, *big.Int, error) {
	var p, q *big.Int
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		p, err = s.primes.GenerateLargePrime(gctx, primeBits, rounds)
		return err
	})
	g.Go(func() error {
		var err error
		q, err = s.primes.GenerateLargePrime(gctx, primeBits, rounds)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return p, q, nil
}
