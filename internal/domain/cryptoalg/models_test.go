//go:build unit
// +build unit

package cryptoalg

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeySize(t *testing.T) {
	tests := []struct {
		name      string
		modulus   *big.Int
		wantBytes int
		wantBits  int
	}{
		{"tiny", big.NewInt(3233), 2, 12},
		{"full byte", big.NewInt(255), 1, 8},
		{"one bit over", big.NewInt(256), 2, 9},
		{"1024-bit", new(big.Int).Lsh(big.NewInt(1), 1023), 128, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keyPair := &KeyPair{
				Public:  &PublicKey{E: big.NewInt(PublicExponent), N: tt.modulus},
				Private: &PrivateKey{D: big.NewInt(1), N: tt.modulus},
			}

			assert.Equal(t, tt.wantBytes, keyPair.Public.Size())
			assert.Equal(t, tt.wantBytes, keyPair.Private.Size())
			assert.Equal(t, tt.wantBits, keyPair.ModulusBits())
		})
	}
}
