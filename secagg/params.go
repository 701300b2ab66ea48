// Package secagg implements the secure-aggregation orchestrator: it fixes
// the scheme's two moduli (the large aggregation modulus q and the small
// auxiliary modulus p used only to serialize key shares), builds their NTT
// tables once, derives the per-chunk uniform polynomials from a shared
// seed, and exposes the encrypt/decrypt/aggregate/key-combination
// operations a federated-learning client or server drives a round with.
package secagg

import "math/big"

// DefaultN is the ring degree fixed by the external interface: every
// engine instance uses this degree regardless of caller-supplied input
// size, chunking larger vectors into DefaultN-sized pieces instead.
const DefaultN = 2048

// DefaultLogN is log2(DefaultN).
const DefaultLogN = 11

// modulusQ80Literal is the 80-bit aggregation modulus: prime, congruent to
// 1 mod 2*DefaultN (so it admits the NTT table DefaultN needs), with
// q-1 = 2^12 * (a 68-bit prime) — which is also why a degree larger than
// 2048 can never be used with this modulus: 2*4096 does not divide q-1.
const modulusQ80Literal = "646119422561999443726337"

// ModulusP is the auxiliary modulus used only for the key-vector
// serialization channel (rlwe.SecretKey.ConvertKey / CreateKeyFromConverted):
// the NewHope reference modulus, small enough to fit Params64.
const ModulusP = 12289

// LogTp is the plaintext-modulus exponent used when any
// serialization channel over ModulusP needs its own plaintext modulus
// (ModulusP's own t = 2^LogTp+1 convention, kept for symmetry with the
// aggregation modulus's plaintext modulus even though the key-serialization
// channel does not itself encrypt anything).
const LogTp = 9

// DefaultStdDev is the fixed error standard deviation sigma = 4.5;
// DefaultVariance is sigma^2 rounded to the nearest
// integer, since the centered binomial sampler's parameter is an integer
// number of coin-flip pairs.
const DefaultStdDev = 4.5

// DefaultVariance is round(DefaultStdDev^2) = round(20.25) = 20.
const DefaultVariance = 20

// ModulusQ80 returns the 80-bit aggregation modulus as a big.Int.
func ModulusQ80() *big.Int {
	q, ok := new(big.Int).SetString(modulusQ80Literal, 10)
	if !ok {
		panic("secagg: malformed modulusQ80Literal")
	}
	return q
}
