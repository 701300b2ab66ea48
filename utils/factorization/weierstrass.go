package factorization

import (
	"math/big"

	"github.com/rtaiello/rlwe-sa/utils/sampling"
)

// Weierstrass is an elliptic curve y^2 = x^3 + ax + b mod N, N not
// necessarily prime: GetFactorECM deliberately works mod a composite N so
// that a point addition's non-invertible denominator exposes one of N's
// factors, the entire point of running ECM over a ring instead of a field.
type Weierstrass struct {
	A, B, N *big.Int
}

// Point is an elliptic curve point in affine coordinates. {0, 1} is this
// package's representation of the point at infinity.
type Point struct {
	X, Y *big.Int
}

var infinityX, infinityY = big.NewInt(0), big.NewInt(1)

// isInfinity reports whether p is the point at infinity.
func isInfinity(p Point) bool {
	return p.X.Cmp(infinityX) == 0 && p.Y.Cmp(infinityY) == 0
}

// Add adds two points on w, assuming both already lie on the curve (this
// method does not verify that). Callers that instead need to detect a
// non-invertible denominator — the signal GetFactorECM is actually looking
// for — should use addChecked, which runs the same slope computation but
// surfaces the GCD; ModInverse itself returns nil on a non-invertible
// value, which leaves Add's slope silently wrong.
func (w *Weierstrass) Add(p, q Point) Point {
	if isInfinity(p) {
		return Point{X: new(big.Int).Set(q.X), Y: new(big.Int).Set(q.Y)}
	}
	if isInfinity(q) {
		return Point{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y)}
	}

	N := w.N
	xP, yP := p.X, p.Y
	xQ, yQ := q.X, q.Y

	if xP.Cmp(xQ) == 0 && yP.Cmp(new(big.Int).Sub(N, yQ)) == 0 {
		// p and q are inverses of each other; their sum is infinity.
		return Point{X: new(big.Int), Y: big.NewInt(1)}
	}

	s := new(big.Int)
	tmp := new(big.Int)
	if xP.Cmp(xQ) != 0 {
		// s = (yQ-yP) / (xQ-xP)
		s.Sub(yQ, yP)
		tmp.Sub(xQ, xP)
	} else {
		// p == q: s = (3*xP^2 + a) / (2*yP)
		s.Mul(xP, xP)
		s.Mul(s, big.NewInt(3))
		s.Add(s, w.A)
		tmp.Add(yP, yP)
	}
	tmp.ModInverse(tmp, N)
	s.Mul(s, tmp)
	s.Mod(s, N)

	xR := new(big.Int).Mul(s, s)
	xR.Sub(xR, xP)
	xR.Sub(xR, xQ)
	xR.Mod(xR, N)

	yR := new(big.Int).Sub(xP, xR)
	yR.Mul(yR, s)
	yR.Sub(yR, yP)
	yR.Mod(yR, N)

	return Point{X: xR, Y: yR}
}

// NewRandomWeierstrassCurve picks a random A, random base point (xG, yG)
// on the curve, and derives B to fit — the standard "pick the point first"
// construction Lenstra's method uses to avoid ever needing to find a point
// on an already-fixed curve. It retries until the discriminant 4A^3+27B^2
// is both nonzero and coprime to N, the non-singularity condition ECM
// needs; a discriminant sharing a factor with N is itself occasionally
// useful (it would already expose a factor), but this package leaves that
// edge case to the caller's own GCD retries instead of special-casing it
// here.
func NewRandomWeierstrassCurve(N *big.Int) (Weierstrass, Point) {
	twentySeven := big.NewInt(27)

	for {
		A := sampling.RandInt(N)
		xG := sampling.RandInt(N)
		yG := sampling.RandInt(N)

		ySq := new(big.Int).Mul(yG, yG)
		ySq.Mod(ySq, N)

		xCu := new(big.Int).Mul(xG, xG)
		xCu.Add(xCu, A)
		xCu.Mul(xCu, xG)
		xCu.Mod(xCu, N)

		B := new(big.Int).Sub(ySq, xCu)
		B.Mod(B, N)

		discriminant := new(big.Int).Mul(A, A)
		discriminant.Mul(discriminant, A)
		discriminant.Mul(discriminant, big.NewInt(4))

		bTerm := new(big.Int).Mul(B, B)
		bTerm.Mul(bTerm, twentySeven)

		discriminant.Add(discriminant, bTerm)
		discriminant.Mod(discriminant, N)

		if discriminant.Sign() != 0 && new(big.Int).GCD(nil, nil, N, discriminant).Cmp(big.NewInt(1)) == 0 {
			return Weierstrass{A: A, B: B, N: N}, Point{X: xG, Y: yG}
		}
	}
}
