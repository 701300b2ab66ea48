package prng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// ChaChaKeyLength is the required key length, in bytes, for ChaChaStream.
const ChaChaKeyLength = 32

// ChaChaStream is the ChaCha20-based PRNG variant. It is
// interchangeable with HKDFStream behind the Stream interface; the
// secure-aggregation engine itself never selects it, but it remains
// available to callers that want the same deterministic-stream contract
// over a different primitive.
type ChaChaStream struct {
	*buffered
	key  []byte
	salt uint64
}

// NewChaChaStream derives a new deterministic stream from a 32-byte key.
func NewChaChaStream(key []byte) (*ChaChaStream, error) {
	if len(key) != ChaChaKeyLength {
		return nil, ErrSeedSize
	}

	s := &ChaChaStream{key: append([]byte(nil), key...)}
	s.buffered = newBuffered(s.refill)
	return s, nil
}

// GenerateChaChaKey draws a fresh, uniformly random 32-byte key suitable
// for NewChaChaStream.
func GenerateChaChaKey() ([]byte, error) {
	key := make([]byte, ChaChaKeyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("prng: generating ChaCha20 key: %w", ErrPRNG)
	}
	return key, nil
}

func (s *ChaChaStream) refill(buf []byte) error {
	var nonce [chacha20.NonceSize]byte
	binary.BigEndian.PutUint64(nonce[chacha20.NonceSize-8:], s.salt)

	c, err := chacha20.NewUnauthenticatedCipher(s.key, nonce[:])
	if err != nil {
		return fmt.Errorf("prng: ChaCha20 init: %w", ErrPRNG)
	}

	for i := range buf {
		buf[i] = 0
	}
	c.XORKeyStream(buf, buf)
	s.salt++
	return nil
}
