package cryptography

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	codec  cryptoalg.OAEPCodec
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(codec cryptoalg.OAEPCodec, logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	if codec == nil {
		return nil, fmt.Errorf("OAEP codec cannot be nil")
	}
	return &rsaProcessor{
		codec:  codec,
		logger: logger,
	}, nil
}

// Encrypt encrypts plaintext using RSA-OAEP with the public key.
// The message must fit into a single block (see OAEPCodec.MaxMessageLength);
// the ciphertext is exactly publicKey.Size() bytes.
func (r *rsaProcessor) Encrypt(plainText []byte, publicKey *cryptoalg.PublicKey) ([]byte, error) {
	if publicKey == nil || publicKey.N == nil || publicKey.E == nil {
		return nil, fmt.Errorf("%w: public key cannot be nil", cryptoalg.ErrInvalidParameters)
	}

	k := publicKey.Size()
	block, err := r.codec.Encode(plainText, k)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	m := new(big.Int).SetBytes(block)
	if m.Cmp(publicKey.N) >= 0 {
		return nil, fmt.Errorf("failed to encrypt data: %w", cryptoalg.ErrCiphertextRange)
	}

	c := new(big.Int).Exp(m, publicKey.E, publicKey.N)

	r.logger.Info("RSA encryption succeeded")
	return c.FillBytes(make([]byte, k)), nil
}

// Decrypt decrypts RSA-OAEP ciphertext using the private key.
// Returns the original plaintext or an error if decryption fails.
func (r *rsaProcessor) Decrypt(ciphertext []byte, privateKey *cryptoalg.PrivateKey) ([]byte, error) {
	if privateKey == nil || privateKey.N == nil || privateKey.D == nil {
		return nil, fmt.Errorf("%w: private key cannot be nil", cryptoalg.ErrInvalidParameters)
	}

	c := new(big.Int).SetBytes(ciphertext)
	if c.Cmp(privateKey.N) >= 0 {
		return nil, fmt.Errorf("failed to decrypt data: %w", cryptoalg.ErrCiphertextRange)
	}

	k := privateKey.Size()
	m := new(big.Int).Exp(c, privateKey.D, privateKey.N)

	plainText, err := r.codec.Decode(m.FillBytes(make([]byte, k)), k)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	r.logger.Info("RSA decryption succeeded")
	return plainText, nil
}
