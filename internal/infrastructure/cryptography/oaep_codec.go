package cryptography

import (
	"bytes"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
)

// oaepCodec implements cryptoalg.OAEPCodec with an empty label.
//
// Block layout: 0x00 || maskedSeed (hLen) || maskedDB, where the unmasked
// DB is lHash || 0x00.. || 0x01 || message.
type oaepCodec struct {
	newHash   cryptoalg.HashFunc
	random    io.Reader
	labelHash []byte
	hLen      int
}

// NewOAEPCodec creates an OAEP codec for newHash. Seeds are read from random,
// or crypto/rand.Reader when random is nil.
func NewOAEPCodec(newHash cryptoalg.HashFunc, random io.Reader) (cryptoalg.OAEPCodec, error) {
	if newHash == nil {
		return nil, errors.New("hash function cannot be nil")
	}
	if random == nil {
		random = rand.Reader
	}

	h := newHash()
	return &oaepCodec{
		newHash:   newHash,
		random:    random,
		labelHash: h.Sum(nil),
		hLen:      h.Size(),
	}, nil
}

// MaxMessageLength returns nByteLength - 2*hLen - 2, negative when the modulus is too small.
func (c *oaepCodec) MaxMessageLength(nByteLength int) int {
	return nByteLength - 2*c.hLen - 2
}

// Encode pads message into a randomized block of exactly nByteLength bytes.
func (c *oaepCodec) Encode(message []byte, nByteLength int) ([]byte, error) {
	maxLength := c.MaxMessageLength(nByteLength)
	if len(message) > maxLength {
		return nil, fmt.Errorf("%w: %d bytes, at most %d allowed", cryptoalg.ErrMessageTooLong, len(message), maxLength)
	}

	block := make([]byte, nByteLength)
	seed := block[1 : 1+c.hLen]
	db := block[1+c.hLen:]

	copy(db, c.labelHash)
	db[len(db)-len(message)-1] = 0x01
	copy(db[len(db)-len(message):], message)

	if _, err := io.ReadFull(c.random, seed); err != nil {
		return nil, fmt.Errorf("failed to read OAEP seed: %w", err)
	}

	subtle.XORBytes(db, db, MGF1(seed, len(db), c.newHash))
	subtle.XORBytes(seed, seed, MGF1(db, c.hLen, c.newHash))

	return block, nil
}

// Decode unmasks block and returns the embedded message. The leading byte is not inspected.
func (c *oaepCodec) Decode(block []byte, nByteLength int) ([]byte, error) {
	if nByteLength < 2*c.hLen+2 || len(block) != nByteLength {
		return nil, cryptoalg.ErrOAEPIntegrity
	}

	maskedSeed := block[1 : 1+c.hLen]
	maskedDB := block[1+c.hLen:]

	seed := make([]byte, c.hLen)
	subtle.XORBytes(seed, maskedSeed, MGF1(maskedDB, c.hLen, c.newHash))

	db := make([]byte, len(maskedDB))
	subtle.XORBytes(db, maskedDB, MGF1(seed, len(maskedDB), c.newHash))

	labelMatches := subtle.ConstantTimeCompare(db[:c.hLen], c.labelHash) == 1

	rest := db[c.hLen:]
	separator := bytes.IndexByte(rest, 0x01)

	// both failure causes collapse into one error
	if !labelMatches || separator < 0 {
		return nil, cryptoalg.ErrOAEPIntegrity
	}

	return rest[separator+1:], nil
}
