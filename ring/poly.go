package ring

import "github.com/rtaiello/rlwe-sa/modarith"

// Poly holds the N coefficients of an element of R_q = Z_q[X]/(X^N+1). A
// Poly is always tied to exactly one modulus at a time: secure aggregation
// never builds RNS towers of several moduli sharing one backing buffer;
// converting a key or ciphertext between q and p produces a brand new Poly
// over the other modulus instead of adding a level to the same one.
//
// Coefficients are always carried in the Montgomery form of whichever
// modarith.Params built the Poly's owning Table. IsNTT records whether
// they are in coefficient or evaluation (NTT) representation.
type Poly struct {
	Coeffs []modarith.Elem
	IsNTT  bool
}

// NewPoly allocates a zero polynomial of degree N.
func NewPoly(N int) *Poly {
	return &Poly{Coeffs: make([]modarith.Elem, N)}
}

// N returns the degree of the polynomial.
func (p *Poly) N() int { return len(p.Coeffs) }

// CopyNew returns a fresh copy of p.
func (p *Poly) CopyNew() *Poly {
	c := make([]modarith.Elem, len(p.Coeffs))
	copy(c, p.Coeffs)
	return &Poly{Coeffs: c, IsNTT: p.IsNTT}
}

// Copy overwrites p with the contents of other. Both must have the same
// degree.
func (p *Poly) Copy(other *Poly) {
	copy(p.Coeffs, other.Coeffs)
	p.IsNTT = other.IsNTT
}

// Zero sets every coefficient to zero.
func (p *Poly) Zero() {
	for i := range p.Coeffs {
		p.Coeffs[i] = modarith.Elem{}
	}
}

// Equal reports whether p and other carry identical coefficients and NTT
// state.
func (p *Poly) Equal(other *Poly) bool {
	if p.IsNTT != other.IsNTT || len(p.Coeffs) != len(other.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if p.Coeffs[i] != other.Coeffs[i] {
			return false
		}
	}
	return true
}
