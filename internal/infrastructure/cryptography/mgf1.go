package cryptography

import (
	"encoding/binary"

	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
)

// MGF1 expands seed into maskLength bytes as
// H(seed || 0x00000000) || H(seed || 0x00000001) || ... truncated to maskLength.
func MGF1(seed []byte, maskLength int, newHash cryptoalg.HashFunc) []byte {
	h := newHash()
	mask := make([]byte, 0, maskLength+h.Size())

	var counter [4]byte
	for c := uint32(0); len(mask) < maskLength; c++ {
		binary.BigEndian.PutUint32(counter[:], c)
		h.Reset()
		h.Write(seed)
		h.Write(counter[:])
		mask = h.Sum(mask)
	}

	return mask[:maskLength]
}
