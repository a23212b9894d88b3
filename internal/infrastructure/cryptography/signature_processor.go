package cryptography

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"math/big"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/logger"
)

// signatureProcessor implements cryptoalg.SignatureProcessor: s = H(data)^d mod n,
// transported as Base64 of a modulus-sized big-endian integer.
type signatureProcessor struct {
	fs      afero.Fs
	newHash cryptoalg.HashFunc
	logger  logger.Logger
}

// NewSignatureProcessor creates a signature processor reading files from fs.
// A nil fs falls back to the operating system filesystem.
func NewSignatureProcessor(fs afero.Fs, newHash cryptoalg.HashFunc, logger logger.Logger) (cryptoalg.SignatureProcessor, error) {
	if newHash == nil {
		return nil, fmt.Errorf("hash function cannot be nil")
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &signatureProcessor{
		fs:      fs,
		newHash: newHash,
		logger:  logger,
	}, nil
}

// Sign hashes the file at filePath and signs the digest with the private key.
func (s *signatureProcessor) Sign(filePath string, privateKey *cryptoalg.PrivateKey) (string, error) {
	digest, err := s.fileDigest(filePath)
	if err != nil {
		return "", err
	}

	signature, err := s.signDigest(digest, privateKey)
	if err != nil {
		return "", err
	}

	s.logger.Info("RSA signing succeeded for ", filePath)
	return signature, nil
}

// Verify recomputes the digest of the file at filePath and compares it with the signed one.
// A mismatch is reported as false without an error.
func (s *signatureProcessor) Verify(filePath, signatureB64 string, publicKey *cryptoalg.PublicKey) (bool, error) {
	digest, err := s.fileDigest(filePath)
	if err != nil {
		return false, err
	}

	valid, err := s.verifyDigest(digest, signatureB64, publicKey)
	if err != nil {
		return false, err
	}

	if valid {
		s.logger.Info("RSA signature verified successfully for ", filePath)
	} else {
		s.logger.Warn("RSA signature does not match ", filePath)
	}
	return valid, nil
}

// SignData signs an in-memory payload.
func (s *signatureProcessor) SignData(data []byte, privateKey *cryptoalg.PrivateKey) (string, error) {
	return s.signDigest(s.digest(data), privateKey)
}

// VerifyData verifies a signature over an in-memory payload.
func (s *signatureProcessor) VerifyData(data []byte, signatureB64 string, publicKey *cryptoalg.PublicKey) (bool, error) {
	return s.verifyDigest(s.digest(data), signatureB64, publicKey)
}

func (s *signatureProcessor) digest(data []byte) []byte {
	h := s.newHash()
	h.Write(data)
	return h.Sum(nil)
}

func (s *signatureProcessor) fileDigest(filePath string) ([]byte, error) {
	file, err := s.fs.Open(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("unable to open file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Warn("failed to close file: ", err)
		}
	}()

	h := s.newHash()
	if _, err := io.Copy(h, file); err != nil {
		return nil, fmt.Errorf("unable to read file: %w", err)
	}
	return h.Sum(nil), nil
}

func (s *signatureProcessor) signDigest(digest []byte, privateKey *cryptoalg.PrivateKey) (string, error) {
	if privateKey == nil || privateKey.N == nil || privateKey.D == nil {
		return "", fmt.Errorf("%w: private key cannot be nil", cryptoalg.ErrInvalidParameters)
	}

	h := new(big.Int).SetBytes(digest)
	if h.Cmp(privateKey.N) >= 0 {
		return "", fmt.Errorf("failed to sign data: digest %w", cryptoalg.ErrCiphertextRange)
	}

	sig := new(big.Int).Exp(h, privateKey.D, privateKey.N)
	return base64.StdEncoding.EncodeToString(sig.FillBytes(make([]byte, privateKey.Size()))), nil
}

func (s *signatureProcessor) verifyDigest(digest []byte, signatureB64 string, publicKey *cryptoalg.PublicKey) (bool, error) {
	if publicKey == nil || publicKey.N == nil || publicKey.E == nil {
		return false, fmt.Errorf("%w: public key cannot be nil", cryptoalg.ErrInvalidParameters)
	}

	raw, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return false, fmt.Errorf("failed to decode signature: %w", err)
	}

	sig := new(big.Int).SetBytes(raw)
	if sig.Cmp(publicKey.N) >= 0 {
		return false, fmt.Errorf("failed to verify signature: %w", cryptoalg.ErrCiphertextRange)
	}

	recovered := new(big.Int).Exp(sig, publicKey.E, publicKey.N)
	if recovered.BitLen() > 8*len(digest) {
		return false, nil
	}

	return subtle.ConstantTimeCompare(recovered.FillBytes(make([]byte, len(digest))), digest) == 1, nil
}
