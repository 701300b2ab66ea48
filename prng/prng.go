// Package prng implements seedable, deterministic pseudo-random byte
// streams for the RLWE secure-aggregation engine. Two interchangeable
// variants satisfy the same Stream interface: an HKDF-SHA256-based stream
// and a ChaCha20-based stream, offering interchangeable PRNG
// implementations behind a single io.Reader-shaped interface.
//
// Stream instances are single-threaded: calling Read/Rand8/Rand64
// concurrently on the same Stream from two goroutines produces an
// undefined interleaving and breaks determinism.
package prng

// Stream is the capability every PRNG variant exposes: a deterministic
// byte stream seeded once at construction, plus convenience accessors for
// single bytes and 64-bit words.
type Stream interface {
	// Read fills p with the next len(p) bytes of the stream. It always
	// returns len(p), nil unless the underlying primitive fails.
	Read(p []byte) (int, error)

	// Rand8 returns the next byte of the stream.
	Rand8() (uint8, error)

	// Rand64 returns the next 8 bytes of the stream as a big-endian
	// uint64.
	Rand64() (uint64, error)
}

// bufferSize is the number of bytes produced per "salt" in both variants:
// 255 blocks of a 32-byte hash hash output, the RFC 5869 HKDF-Expand
// ceiling for SHA-256. The ChaCha20 variant reuses the same buffer size so
// that both variants re-key on an identical schedule, even though ChaCha20
// itself has no such limit.
const bufferSize = 255 * 32
