//go:build unit
// +build unit

package cryptography

import (
	"context"
	"crypto/rand"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/testutil"
)

func TestIsProbablePrime_KnownAnswers(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	tests := []struct {
		n     int64
		prime bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{5, true},
		{15, false},
		{97, true},
		{341, false},
		{561, false},
		{7919, true},
	}

	sources := map[string]io.Reader{
		"fixed witness": zeroReader{},
		"crypto/rand":   rand.Reader,
	}

	for name, random := range sources {
		t.Run(name, func(t *testing.T) {
			generator, err := NewPrimeGenerator(random, log)
			require.NoError(t, err)

			for _, tt := range tests {
				prime, err := generator.IsProbablePrime(big.NewInt(tt.n), 20)
				require.NoError(t, err)
				assert.Equal(t, tt.prime, prime, "n=%d", tt.n)
			}
		})
	}
}

func TestIsProbablePrime_FalsePositiveRate(t *testing.T) {
	generator, err := NewPrimeGenerator(nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	// 561 is a Carmichael number; a single round must reject it at least 3 times in 4
	const trials = 400
	carmichael := big.NewInt(561)
	passed := 0
	for i := 0; i < trials; i++ {
		prime, err := generator.IsProbablePrime(carmichael, 1)
		require.NoError(t, err)
		if prime {
			passed++
		}
	}
	assert.LessOrEqual(t, passed, trials/4)
}

func TestIsProbablePrime_InvalidRounds(t *testing.T) {
	generator, err := NewPrimeGenerator(nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = generator.IsProbablePrime(big.NewInt(97), 0)
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidParameters)
}

func TestGenerateLargePrime(t *testing.T) {
	generator, err := NewPrimeGenerator(nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	for _, bits := range []int{2, 3, 64, 512, 1024} {
		prime, err := generator.GenerateLargePrime(context.Background(), bits, TestRounds)
		require.NoError(t, err)

		assert.Equal(t, bits, prime.BitLen(), "bits=%d", bits)
		assert.Equal(t, uint(1), prime.Bit(0), "bits=%d", bits)
		assert.True(t, prime.ProbablyPrime(20), "bits=%d", bits)
	}
}

func TestGenerateLargePrime_DistinctResults(t *testing.T) {
	generator, err := NewPrimeGenerator(nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	p, err := generator.GenerateLargePrime(context.Background(), TestPrimeBits512, TestRounds)
	require.NoError(t, err)
	q, err := generator.GenerateLargePrime(context.Background(), TestPrimeBits512, TestRounds)
	require.NoError(t, err)

	assert.NotEqual(t, 0, p.Cmp(q))
}

func TestGenerateLargePrime_Errors(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	t.Run("InvalidBits", func(t *testing.T) {
		generator, err := NewPrimeGenerator(nil, log)
		require.NoError(t, err)

		_, err = generator.GenerateLargePrime(context.Background(), 1, TestRounds)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidParameters)
	})

	t.Run("InvalidRounds", func(t *testing.T) {
		generator, err := NewPrimeGenerator(nil, log)
		require.NoError(t, err)

		_, err = generator.GenerateLargePrime(context.Background(), TestPrimeBits512, 0)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidParameters)
	})

	t.Run("Cancelled", func(t *testing.T) {
		generator, err := NewPrimeGenerator(nil, log)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = generator.GenerateLargePrime(ctx, TestPrimeBits512, TestRounds)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("RandomSourceFailure", func(t *testing.T) {
		generator, err := NewPrimeGenerator(failingReader{}, log)
		require.NoError(t, err)

		_, err = generator.GenerateLargePrime(context.Background(), TestPrimeBits512, TestRounds)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "entropy source unavailable")
	})
}

func TestOddCandidate(t *testing.T) {
	g := &primeGenerator{random: zeroReader{}, logger: testutil.SetupTestLogger(t)}

	for _, bits := range []int{2, 7, 8, 9, 1023, 1024} {
		candidate, err := g.oddCandidate(bits)
		require.NoError(t, err)

		// with no entropy only the forced top and bottom bits remain
		expected := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		expected.SetBit(expected, 0, 1)
		assert.Equal(t, 0, expected.Cmp(candidate), "bits=%d", bits)
	}
}

func TestDecompose(t *testing.T) {
	d, s := decompose(big.NewInt(560))
	assert.Equal(t, int64(35), d.Int64())
	assert.Equal(t, uint(4), s)

	d, s = decompose(big.NewInt(96))
	assert.Equal(t, int64(3), d.Int64())
	assert.Equal(t, uint(5), s)
}

func TestRandomInRange(t *testing.T) {
	lo, hi := big.NewInt(2), big.NewInt(9)
	seen := make(map[int64]bool)

	for i := 0; i < 500; i++ {
		v, err := randomInRange(rand.Reader, lo, hi)
		require.NoError(t, err)
		require.True(t, v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0, "value %s out of range", v)
		seen[v.Int64()] = true
	}
	assert.Len(t, seen, 8)

	v, err := randomInRange(zeroReader{}, lo, hi)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Int64())
}
