package ring

import "github.com/rtaiello/rlwe-sa/modarith"

// Add computes p1+p2 coefficient-wise. Both operands must share the same
// representation (both NTT or both coefficient domain); addition is linear
// coordinatewise in either domain, but mixing them silently would add
// evaluations to coefficients and produce a result with no meaning in
// either representation.
func (t *Table) Add(p1, p2 *Poly) (*Poly, error) {
	if p1.N() != t.N || p2.N() != t.N {
		return nil, ErrDegreeMismatch
	}
	if p1.IsNTT != p2.IsNTT {
		return nil, ErrRepresentationMismatch
	}
	out := NewPoly(t.N)
	out.IsNTT = p1.IsNTT
	for i := range out.Coeffs {
		out.Coeffs[i] = t.Params.Add(p1.Coeffs[i], p2.Coeffs[i])
	}
	return out, nil
}

// Sub computes p1-p2 coefficient-wise. Both operands must share the same
// representation, for the same reason as Add.
func (t *Table) Sub(p1, p2 *Poly) (*Poly, error) {
	if p1.N() != t.N || p2.N() != t.N {
		return nil, ErrDegreeMismatch
	}
	if p1.IsNTT != p2.IsNTT {
		return nil, ErrRepresentationMismatch
	}
	out := NewPoly(t.N)
	out.IsNTT = p1.IsNTT
	for i := range out.Coeffs {
		out.Coeffs[i] = t.Params.Sub(p1.Coeffs[i], p2.Coeffs[i])
	}
	return out, nil
}

// Neg computes -p coefficient-wise.
func (t *Table) Neg(p *Poly) (*Poly, error) {
	if p.N() != t.N {
		return nil, ErrDegreeMismatch
	}
	out := NewPoly(t.N)
	out.IsNTT = p.IsNTT
	for i := range out.Coeffs {
		out.Coeffs[i] = t.Params.Neg(p.Coeffs[i])
	}
	return out, nil
}

// MulCoeffs computes the pointwise (Hadamard) product of p1 and p2. Both
// operands must already be in NTT representation: this is the operation
// NTT representation exists for, turning ring multiplication into N
// independent scalar multiplications.
func (t *Table) MulCoeffs(p1, p2 *Poly) (*Poly, error) {
	if p1.N() != t.N || p2.N() != t.N {
		return nil, ErrDegreeMismatch
	}
	if !p1.IsNTT || !p2.IsNTT {
		return nil, ErrRequiresNTT
	}
	out := NewPoly(t.N)
	out.IsNTT = true
	for i := range out.Coeffs {
		out.Coeffs[i] = t.Params.Mul(p1.Coeffs[i], p2.Coeffs[i])
	}
	return out, nil
}

// Mul computes the ring product p1*p2 mod X^N+1, accepting either
// representation as long as both operands agree on it: NTT-form operands
// are multiplied directly with MulCoeffs; coefficient-form operands are
// lifted into NTT, multiplied pointwise, and carried back with INTT, so
// that callers who only have polynomials in coefficient form never have to
// hand-roll the NTT round-trip themselves. The result is returned in the
// same representation the operands were given in.
func (t *Table) Mul(p1, p2 *Poly) (*Poly, error) {
	if p1.N() != t.N || p2.N() != t.N {
		return nil, ErrDegreeMismatch
	}
	if p1.IsNTT != p2.IsNTT {
		return nil, ErrRepresentationMismatch
	}
	if p1.IsNTT {
		return t.MulCoeffs(p1, p2)
	}

	a, err := t.NTT(p1)
	if err != nil {
		return nil, err
	}
	b, err := t.NTT(p2)
	if err != nil {
		return nil, err
	}
	prod, err := t.MulCoeffs(a, b)
	if err != nil {
		return nil, err
	}
	return t.INTT(prod)
}

// FromUint64Slice builds a coefficient-domain Poly from plain (non-Montgomery)
// integer coefficients, reducing and importing each one via the table's
// Params. Used to lift freshly sampled or decoded plaintext/noise vectors
// into the ring.
func (t *Table) FromUint64Slice(coeffs []uint64) (*Poly, error) {
	if len(coeffs) != t.N {
		return nil, ErrDegreeMismatch
	}
	out := NewPoly(t.N)
	for i, c := range coeffs {
		out.Coeffs[i] = t.Params.ImportInt(modarith.FromUint64(c))
	}
	return out, nil
}

// FromElemSlice builds a coefficient-domain Poly from plain (non-Montgomery)
// values that may need the full width of the table's modulus to represent
// (unlike FromUint64Slice, which truncates anything above 64 bits). Used
// when lifting coefficients recovered from a modulus-balanced key
// conversion, where the target modulus can exceed 64 bits.
func (t *Table) FromElemSlice(coeffs []modarith.Elem) (*Poly, error) {
	if len(coeffs) != t.N {
		return nil, ErrDegreeMismatch
	}
	out := NewPoly(t.N)
	for i, c := range coeffs {
		out.Coeffs[i] = t.Params.ImportInt(c)
	}
	return out, nil
}

// ScaleByScalar multiplies every coefficient of p by the Montgomery-form
// scalar s.
func (t *Table) ScaleByScalar(p *Poly, s modarith.Elem) (*Poly, error) {
	if p.N() != t.N {
		return nil, ErrDegreeMismatch
	}
	out := NewPoly(t.N)
	out.IsNTT = p.IsNTT
	for i, c := range p.Coeffs {
		out.Coeffs[i] = t.Params.Mul(c, s)
	}
	return out, nil
}

// ToBigSlice exports every coefficient of p (which must be in coefficient
// representation) back to its plain-domain value, via the table's Params.
func (t *Table) ToBigSlice(p *Poly) ([]modarith.Elem, error) {
	if p.N() != t.N {
		return nil, ErrDegreeMismatch
	}
	out := make([]modarith.Elem, t.N)
	for i, c := range p.Coeffs {
		out[i] = t.Params.ExportInt(c)
	}
	return out, nil
}
