//go:build unit
// +build unit

package cryptography

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/testutil"
)

const (
	TestPrimeBits512 = 512
	TestRounds       = 5
)

// zeroReader yields an endless stream of zero bytes, pinning every witness to 2.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// failingReader simulates an exhausted entropy source.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}

func newTestKeyPair(t *testing.T, primeBits int) *cryptoalg.KeyPair {
	t.Helper()
	log := testutil.SetupTestLogger(t)

	primes, err := NewPrimeGenerator(nil, log)
	require.NoError(t, err)
	factory, err := NewKeyFactory(log)
	require.NoError(t, err)

	for {
		p, err := primes.GenerateLargePrime(context.Background(), primeBits, TestRounds)
		require.NoError(t, err)
		q, err := primes.GenerateLargePrime(context.Background(), primeBits, TestRounds)
		require.NoError(t, err)

		keyPair, err := factory.DeriveKeyPair(p, q)
		if errors.Is(err, cryptoalg.ErrInvalidParameters) {
			continue
		}
		require.NoError(t, err)
		return keyPair
	}
}

func mustHash(t *testing.T, algorithm string) cryptoalg.HashFunc {
	t.Helper()
	newHash, err := NewHashFunc(algorithm)
	require.NoError(t, err)
	return newHash
}
