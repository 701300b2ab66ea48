package prng

import "errors"

// Sentinel errors returned by the prng package.
var (
	// ErrPRNG is returned when the underlying cryptographic primitive
	// fails (HKDF expansion, ChaCha20 keystream generation, or the
	// entropy source behind GenerateSeed).
	ErrPRNG = errors.New("prng: cryptographic failure")

	// ErrSeedSize is returned when a seed or key does not match the
	// length the chosen variant requires.
	ErrSeedSize = errors.New("prng: seed length mismatch")
)
