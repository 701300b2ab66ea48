package ring

// NTT evaluates the forward negacyclic number-theoretic transform of p,
// returning a new Poly holding the evaluations. p must be in coefficient
// representation (IsNTT == false) and of degree t.N.
//
// The algorithm is the standard decimation-in-time Cooley-Tukey butterfly
// network over bit-reversed twiddle tables, without 8-wide SIMD unrolling,
// which buys nothing here since Params128's Mul goes through math/big and
// gains nothing from loop unrolling over an interface call.
func (t *Table) NTT(p *Poly) (*Poly, error) {
	if p.N() != t.N {
		return nil, ErrDegreeMismatch
	}
	if p.IsNTT {
		return p.CopyNew(), nil
	}

	out := p.CopyNew()
	params := t.Params
	N := t.N

	m, span := 1, N
	for m < N {
		span >>= 1
		for i := 0; i < m; i++ {
			j1 := 2 * i * span
			j2 := j1 + span - 1
			psi := t.RootsForward[m+i]
			for j := j1; j <= j2; j++ {
				u := out.Coeffs[j]
				v := params.Mul(out.Coeffs[j+span], psi)
				out.Coeffs[j] = params.Add(u, v)
				out.Coeffs[j+span] = params.Sub(u, v)
			}
		}
		m <<= 1
	}

	out.IsNTT = true
	return out, nil
}

// INTT evaluates the inverse negacyclic NTT of p, returning a new Poly in
// coefficient representation. p must be in evaluation representation
// (IsNTT == true) and of degree t.N.
func (t *Table) INTT(p *Poly) (*Poly, error) {
	if p.N() != t.N {
		return nil, ErrDegreeMismatch
	}
	if !p.IsNTT {
		return p.CopyNew(), nil
	}

	out := p.CopyNew()
	params := t.Params
	N := t.N

	span := 1
	for m := N; m > 1; m >>= 1 {
		half := m >> 1
		for i := 0; i < half; i++ {
			j1 := 2 * i * span
			j2 := j1 + span - 1
			psiInv := t.RootsBackward[half+i]
			for j := j1; j <= j2; j++ {
				u := out.Coeffs[j]
				v := out.Coeffs[j+span]
				out.Coeffs[j] = params.Add(u, v)
				out.Coeffs[j+span] = params.Mul(params.Sub(u, v), psiInv)
			}
		}
		span <<= 1
	}

	for i, c := range out.Coeffs {
		out.Coeffs[i] = params.Mul(c, t.NInv)
	}

	out.IsNTT = false
	return out, nil
}
