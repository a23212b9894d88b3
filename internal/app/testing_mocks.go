//go:build unit
// +build unit

package app

import (
	"context"
	"math/big"

	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"

	"github.com/stretchr/testify/mock"
)

// MockPrimeGenerator is a mock implementation of PrimeGenerator
type MockPrimeGenerator struct {
	mock.Mock
}

func (m *MockPrimeGenerator) GenerateLargePrime(ctx context.Context, bits, rounds int) (*big.Int, error) {
	args := m.Called(ctx, bits, rounds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockPrimeGenerator) IsProbablePrime(n *big.Int, rounds int) (bool, error) {
	args := m.Called(n, rounds)
	return args.Bool(0), args.Error(1)
}

// MockKeyFactory is a mock implementation of KeyFactory
type MockKeyFactory struct {
	mock.Mock
}

func (m *MockKeyFactory) DeriveKeyPair(p, q *big.Int) (*cryptoalg.KeyPair, error) {
	args := m.Called(p, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.KeyPair), args.Error(1)
}
