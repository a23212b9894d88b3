package cryptoalg

import (
	"context"
	"math/big"
)

// PrimeGenerator produces probable primes for RSA moduli.
type PrimeGenerator interface {
	// GenerateLargePrime returns an odd integer of exactly bits bits that passed rounds
	// Miller-Rabin rounds. Cancellation is honoured between candidates.
	GenerateLargePrime(ctx context.Context, bits, rounds int) (*big.Int, error)

	// IsProbablePrime runs rounds Miller-Rabin rounds with fresh random witnesses.
	IsProbablePrime(n *big.Int, rounds int) (bool, error)
}

// KeyFactory derives RSA key pairs from two primes.
type KeyFactory interface {
	// DeriveKeyPair computes n = p*q and d = e^-1 mod (p-1)(q-1) for e = 65537.
	// It returns ErrInvalidParameters when e and phi(n) are not coprime; the caller
	// must then retry with different primes.
	DeriveKeyPair(p, q *big.Int) (*KeyPair, error)
}

// OAEPCodec applies and removes OAEP padding for raw RSA.
type OAEPCodec interface {
	// Encode pads message into a block of exactly nByteLength bytes.
	Encode(message []byte, nByteLength int) ([]byte, error)

	// Decode recovers the message from a padded block.
	// Every integrity failure is reported as ErrOAEPIntegrity.
	Decode(block []byte, nByteLength int) ([]byte, error)

	// MaxMessageLength returns the largest message Encode accepts for nByteLength.
	MaxMessageLength(nByteLength int) int
}

// RSAProcessor handles OAEP-padded RSA encryption.
type RSAProcessor interface {
	// Encrypt pads plainText with OAEP and computes m^e mod n.
	Encrypt(plainText []byte, publicKey *PublicKey) ([]byte, error)

	// Decrypt computes c^d mod n and removes the OAEP padding.
	Decrypt(ciphertext []byte, privateKey *PrivateKey) ([]byte, error)
}

// SignatureProcessor signs and verifies file contents with raw RSA over a digest.
type SignatureProcessor interface {
	// Sign hashes the whole file and returns the Base64 signature.
	Sign(filePath string, privateKey *PrivateKey) (string, error)

	// Verify reports whether signatureB64 matches the current contents of the file.
	Verify(filePath, signatureB64 string, publicKey *PublicKey) (bool, error)

	// SignData signs an in-memory payload.
	SignData(data []byte, privateKey *PrivateKey) (string, error)

	// VerifyData verifies a signature over an in-memory payload.
	VerifyData(data []byte, signatureB64 string, publicKey *PublicKey) (bool, error)
}
