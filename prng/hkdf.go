package prng

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDFSeedLength is the required seed length, in bytes, for HKDFStream: 32
// raw bytes, keyed directly into HKDF-Extract/Expand with SHA-256.
const HKDFSeedLength = 32

// HKDFStream is the HKDF-SHA256-based PRNG variant. It is the only variant
// the secure-aggregation engine consumes: deterministic across
// implementations, and re-keyed with an incrementing salt counter
// every 255*32 output bytes, the RFC 5869 limit for a single HKDF-Expand
// call with a 32-byte hash.
type HKDFStream struct {
	*buffered
	seed []byte
	salt uint64
}

// NewHKDFStream derives a new deterministic stream from a 32-byte seed.
func NewHKDFStream(seed []byte) (*HKDFStream, error) {
	if len(seed) != HKDFSeedLength {
		return nil, ErrSeedSize
	}

	s := &HKDFStream{seed: append([]byte(nil), seed...)}
	s.buffered = newBuffered(s.refill)
	return s, nil
}

// GenerateHKDFSeed draws a fresh, uniformly random 32-byte seed suitable
// for NewHKDFStream.
func GenerateHKDFSeed() ([]byte, error) {
	seed := make([]byte, HKDFSeedLength)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("prng: generating HKDF seed: %w", ErrPRNG)
	}
	return seed, nil
}

func (s *HKDFStream) refill(buf []byte) error {
	var salt [8]byte
	binary.BigEndian.PutUint64(salt[:], s.salt)

	r := hkdf.New(sha256.New, s.seed, salt[:], nil)
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("prng: HKDF expand: %w", ErrPRNG)
	}
	s.salt++
	return nil
}
