// Package rlwe implements symmetric RLWE encryption, decryption, and the
// additively-homomorphic key/ciphertext algebra the secure-aggregation
// engine builds on: a secret key is a small-norm ring element carried in
// NTT form, a ciphertext is a pair of NTT-form polynomials, and both admit
// coordinatewise addition directly in the evaluation domain.
package rlwe

import "errors"

// Error taxonomy. Each is a distinct observable kind a caller can branch
// on with errors.Is; operational detail is layered on with fmt.Errorf's
// %w at the call site.
var (
	ErrInvalidArgument        = errors.New("rlwe: invalid argument")
	ErrParamsMismatch         = errors.New("rlwe: operands disagree on modulus, degree, or NTT table")
	ErrRepresentationMismatch = errors.New("rlwe: polynomial in wrong representation for this operation")
	ErrPowerOfSMismatch       = errors.New("rlwe: ciphertexts have different power_of_s")
)
