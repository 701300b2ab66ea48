package modarith

import (
	"fmt"
	"math/bits"
)

// Params64 is the native-uint64 Montgomery arithmetic path, for moduli that
// fit in 64 bits. The reduction routine below follows the classic Montgomery
// multiplication structure: a radix of 2^64, a positive modular inverse
// qInv = q^-1 mod 2^64 precomputed once, and a single conditional
// subtraction of q on the hot path.
type Params64 struct {
	q    uint64
	qInv uint64 // q^-1 mod 2^64
	r2   uint64 // R^2 mod q, used to lift a reduced plain value into Montgomery form
	logQ int
}

// NewParams64 builds the Montgomery constants for an odd modulus q that
// fits in 64 bits.
func NewParams64(q uint64) (*Params64, error) {
	if q == 0 || q&1 == 0 {
		return nil, ErrInvalidModulus
	}
	if bits.Len64(q) > 64 {
		return nil, ErrImport
	}

	p := &Params64{
		q:    q,
		qInv: mredInv64(q),
		logQ: bits.Len64(q),
	}

	// R mod q, via 64 doublings starting from 1; R^2 mod q follows by one
	// more modular squaring. Only run once at construction time, so a
	// native division here is not on any hot path.
	r := uint64(1)
	for i := 0; i < 64; i++ {
		r = addMod64(r, r, q)
	}
	hi, lo := bits.Mul64(r, r)
	_, p.r2 = bits.Div64(hi%q, lo, q)
	return p, nil
}

func (p *Params64) Width() Width  { return Width64 }
func (p *Params64) LogQ() int     { return p.logQ }
func (p *Params64) Modulus() Elem { return Elem{Lo: p.q} }

// ImportInt reduces x mod q, then lifts it into Montgomery form via a
// Montgomery multiplication against the precomputed R^2 mod q.
func (p *Params64) ImportInt(x Elem) Elem {
	return Elem{Lo: mredMul(x.Lo%p.q, p.r2, p.q, p.qInv)}
}

// ExportInt Montgomery-reduces a back into [0, q) by taking its Montgomery
// product with 1.
func (p *Params64) ExportInt(a Elem) Elem {
	return Elem{Lo: mredMul(a.Lo, 1, p.q, p.qInv)}
}

func (p *Params64) Add(a, b Elem) Elem { return Elem{Lo: addMod64(a.Lo, b.Lo, p.q)} }
func (p *Params64) Sub(a, b Elem) Elem { return Elem{Lo: subMod64(a.Lo, b.Lo, p.q)} }

func (p *Params64) Neg(a Elem) Elem {
	if a.Lo == 0 {
		return Elem{}
	}
	return Elem{Lo: p.q - a.Lo}
}

func (p *Params64) Mul(a, b Elem) Elem {
	return Elem{Lo: mredMul(a.Lo, b.Lo, p.q, p.qInv)}
}

func (p *Params64) BatchReduce(xs []Elem) []Elem {
	out := make([]Elem, len(xs))
	for i, x := range xs {
		out[i] = p.ImportInt(x)
	}
	return out
}

// mredInv64 computes q^-1 mod 2^64 for odd q, by Newton-Raphson iteration:
// each pass doubles the number of correct low bits, starting from the fact
// that any odd q is its own inverse mod 4.
func mredInv64(q uint64) uint64 {
	inv := q
	for i := 0; i < 5; i++ {
		inv *= 2 - q*inv
	}
	return inv
}

// mredMul computes the Montgomery product x*y*R^-1 mod q, R = 2^64.
// Because qInv is the positive inverse (q*qInv = 1 mod 2^64), the low word
// of m*q is guaranteed to equal the low word of x*y exactly, so the
// reduction is a plain high-word subtraction with no carry bookkeeping,
// followed by a single conditional correction into [0, q).
func mredMul(x, y, q, qInv uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	m := lo * qInv
	mhi, _ := bits.Mul64(m, q)
	r := hi - mhi + q
	if r >= q {
		r -= q
	}
	return r
}

func addMod64(a, b, q uint64) uint64 {
	r := a + b
	if r >= q {
		r -= q
	}
	return r
}

func subMod64(a, b, q uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + q - b
}

func (p *Params64) String() string {
	return fmt.Sprintf("Params64(q=%d, logQ=%d)", p.q, p.logQ)
}
