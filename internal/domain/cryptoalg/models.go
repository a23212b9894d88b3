package cryptoalg

import (
	"hash"
	"math/big"

	"github.com/google/uuid"
)

// HashFunc returns a fresh hash instance, e.g. sha3.New256.
type HashFunc func() hash.Hash

// PublicKey is the public half (e, n) of an RSA key pair.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// Size returns the modulus length in bytes.
func (k *PublicKey) Size() int {
	return (k.N.BitLen() + 7) / 8
}

// PrivateKey is the private half (d, n) of an RSA key pair.
// It must never leave the party that generated it.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// Size returns the modulus length in bytes.
func (k *PrivateKey) Size() int {
	return (k.N.BitLen() + 7) / 8
}

// KeyPair groups both halves of an RSA key. ID only correlates log entries.
type KeyPair struct {
	ID      uuid.UUID
	Public  *PublicKey
	Private *PrivateKey
}

// ModulusBits returns the bit length of n.
func (kp *KeyPair) ModulusBits() int {
	return kp.Public.N.BitLen()
}
