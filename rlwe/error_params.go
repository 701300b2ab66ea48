package rlwe

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// ErrorParams reports the noise bounds a ciphertext of a given shape
// carries: these are not consulted by Encrypt or Decrypt for correctness —
// decryption only ever looks at the modulus and the plaintext modulus — they
// exist purely so a caller can reason about how much headroom remains
// before accumulated noise could corrupt the message.
//
// The bounds below are computed with arbitrary-precision float arithmetic
// (bigfloat.Pow(x, 0.5) in place of a float64 sqrt) since the plaintext
// modulus t can be large enough (2^11 and up) that a naive float64
// computation of t*sqrt(N) loses relative precision exactly where callers
// care most: comparing BEncryption against the true modulus q.
type ErrorParams struct {
	LogT     int
	Variance uint64
	N        int

	// BPlaintext bounds the magnitude an encoded plaintext polynomial's
	// coefficients can reach before the scale-by-t step: t*sqrt(3N).
	BPlaintext float64

	// BEncryption bounds the noise a freshly produced ciphertext carries:
	// t*sqrt(N)*(sqrt(3) + 6*sigma), sigma the error standard deviation.
	BEncryption float64

	// BScale bounds the noise growth contributed by a single coordinatewise
	// ciphertext addition, under the standard RLWE heuristic that
	// independent error terms add in quadrature: sqrt(2)*BEncryption. This
	// formula is not fixed by any single textbook definition; sqrt(2)
	// scaling per addition is a standard heuristic and is documented as
	// the chosen convention in DESIGN.md.
	BScale float64
}

// NewErrorParams computes the noise bounds for a scheme instance with
// plaintext modulus t = 2^logT+1, error variance, and ring degree N. sigma
// is the standard deviation implied by variance (sigma = sqrt(variance)),
// mirroring the relationship the centered binomial sampler and the
// discrete Gaussian sampler share.
func NewErrorParams(logT int, variance uint64, N int) *ErrorParams {
	t := new(big.Float).SetInt(plaintextModulus(logT))
	nF := big.NewFloat(float64(N))
	sigma := math.Sqrt(float64(variance))
	half := big.NewFloat(0.5)

	sqrt3N := bigfloat.Pow(new(big.Float).Mul(big.NewFloat(3), nF), half)
	bPlain := new(big.Float).Mul(t, sqrt3N)

	sqrtN := bigfloat.Pow(nF, half)
	inner := big.NewFloat(math.Sqrt(3) + 6*sigma)
	bEnc := new(big.Float).Mul(t, new(big.Float).Mul(sqrtN, inner))

	bScale := new(big.Float).Mul(bEnc, bigfloat.Pow(big.NewFloat(2), half))

	bPlainF, _ := bPlain.Float64()
	bEncF, _ := bEnc.Float64()
	bScaleF, _ := bScale.Float64()

	return &ErrorParams{
		LogT:        logT,
		Variance:    variance,
		N:           N,
		BPlaintext:  bPlainF,
		BEncryption: bEncF,
		BScale:      bScaleF,
	}
}

// plaintextModulus returns t = 2^logT + 1, the convention this package
// fixes throughout (see DESIGN.md for why +1 rather than a bare power of
// two).
func plaintextModulus(logT int) *big.Int {
	t := new(big.Int).Lsh(big.NewInt(1), uint(logT))
	return t.Add(t, big.NewInt(1))
}
