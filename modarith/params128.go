package modarith

import "math/big"

// Params128 is the 128-bit-width Montgomery arithmetic path, for moduli
// that do not fit in a 64-bit word — in particular the 80-bit SecAgg
// modulus. Rather than hand-rolling 256-bit intermediate multiply/reduce,
// the modular multiply-then-reduce steps are delegated to math/big; the
// public contract (ImportInt/ExportInt/Add/Sub/Mul/Neg, Montgomery-form
// storage, batch reduction) is identical to Params64. See DESIGN.md for
// the full justification.
type Params128 struct {
	q    *big.Int
	r    *big.Int // R = 2^128 mod q
	rInv *big.Int // R^-1 mod q, used by ExportInt
	logQ int
}

// NewParams128 builds the Montgomery constants for an odd modulus q that
// requires up to 128 bits.
func NewParams128(q *big.Int) (*Params128, error) {
	if q.Sign() <= 0 || q.Bit(0) == 0 {
		return nil, ErrInvalidModulus
	}
	if q.BitLen() > 128 {
		return nil, ErrImport
	}

	r := new(big.Int).Lsh(big.NewInt(1), 128)
	r.Mod(r, q)

	rInv := new(big.Int).ModInverse(r, q)
	if rInv == nil {
		return nil, ErrInvalidModulus
	}

	return &Params128{
		q:    new(big.Int).Set(q),
		r:    r,
		rInv: rInv,
		logQ: q.BitLen(),
	}, nil
}

func (p *Params128) Width() Width { return Width128 }
func (p *Params128) LogQ() int    { return p.logQ }

func (p *Params128) Modulus() Elem { return FromBig(p.q) }

// ImportInt reduces x mod q then multiplies by R, lifting a plain-domain
// value (not necessarily already reduced) into Montgomery form.
func (p *Params128) ImportInt(x Elem) Elem {
	v := ToBig(x)
	v.Mod(v, p.q)
	v.Mul(v, p.r)
	v.Mod(v, p.q)
	return FromBig(v)
}

// ExportInt Montgomery-reduces a back to [0, q) by multiplying by R^-1.
func (p *Params128) ExportInt(a Elem) Elem {
	v := new(big.Int).Mul(ToBig(a), p.rInv)
	v.Mod(v, p.q)
	return FromBig(v)
}

func (p *Params128) Add(a, b Elem) Elem {
	v := new(big.Int).Add(ToBig(a), ToBig(b))
	v.Mod(v, p.q)
	return FromBig(v)
}

func (p *Params128) Sub(a, b Elem) Elem {
	v := new(big.Int).Sub(ToBig(a), ToBig(b))
	v.Mod(v, p.q)
	return FromBig(v)
}

func (p *Params128) Neg(a Elem) Elem {
	v := new(big.Int).Neg(ToBig(a))
	v.Mod(v, p.q)
	return FromBig(v)
}

// Mul computes the Montgomery product a*b*R^-1 mod q. Both operands are
// already in Montgomery form, so the product carries one extra factor of R
// that this divides back out via rInv.
func (p *Params128) Mul(a, b Elem) Elem {
	v := new(big.Int).Mul(ToBig(a), ToBig(b))
	v.Mul(v, p.rInv)
	v.Mod(v, p.q)
	return FromBig(v)
}

func (p *Params128) BatchReduce(xs []Elem) []Elem {
	out := make([]Elem, len(xs))
	for i, x := range xs {
		out[i] = p.ImportInt(x)
	}
	return out
}

// BigModulus returns the modulus q as a big.Int, for callers (the
// modulus-balanced key conversion in rlwe.Key) that need it directly.
func (p *Params128) BigModulus() *big.Int { return new(big.Int).Set(p.q) }
