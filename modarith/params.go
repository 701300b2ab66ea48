// Package modarith implements Montgomery-form modular arithmetic over a
// fixed, odd modulus, generically over an integer width (64 or 128 bits).
//
// Values are always carried in Montgomery form: a residue a is stored as
// a*R mod q for a fixed R = 2^W, so that repeated multiplication avoids
// explicit division. Two concrete implementations satisfy Params: Params64
// (native uint64 Montgomery reduction, for moduli up to 64 bits) and
// Params128 (big.Int-backed, for moduli that need the full 128-bit width,
// such as the 80-bit SecAgg modulus).
package modarith

import "math/big"

// Width is the machine word width backing a modulus's Montgomery arithmetic.
type Width int

// Supported widths.
const (
	Width64  Width = 64
	Width128 Width = 128
)

// Elem is a Montgomery-form residue. It is represented as a little-endian
// 128-bit value (Hi is always zero for values produced by a Width64
// Params) and carries no modulus of its own: every operation on an Elem
// must go through the Params that produced it, and Elems produced by
// different Params must never be mixed.
type Elem struct {
	Lo, Hi uint64
}

// Params is the capability set a modulus-specific Montgomery implementation
// provides. Width-specific code lives behind the two concrete
// implementations (Params64, Params128); code that must stay width-generic
// — the ring, sampling and rlwe packages — programs against this interface
// instead of inheriting from a common base type.
type Params interface {
	// Width reports the integer width this Params was built for.
	Width() Width

	// LogQ reports ceil(log2(q)), the bit-length of the modulus.
	LogQ() int

	// Modulus returns q, in plain (non-Montgomery) form.
	Modulus() Elem

	// ImportInt reduces x mod q and lifts it into Montgomery form. x need
	// not already be reduced: values drawn from a PRNG as raw machine
	// words are reduced here.
	ImportInt(x Elem) Elem

	// ExportInt Montgomery-reduces a back to a plain-domain value in
	// [0, q). The result may need more than 64 bits to represent (e.g.
	// for the 80-bit SecAgg modulus), hence the Elem return type.
	ExportInt(a Elem) Elem

	// Add, Sub and Neg operate on Montgomery-form elements; the result is
	// again in Montgomery form since R cancels under addition.
	Add(a, b Elem) Elem
	Sub(a, b Elem) Elem
	Neg(a Elem) Elem

	// Mul computes the Montgomery product of two Montgomery-form elements.
	Mul(a, b Elem) Elem

	// BatchReduce amortizes the reduction of many plain-domain values into
	// Montgomery form, the width-generic equivalent of ModArith's
	// batch_reduce helper.
	BatchReduce(xs []Elem) []Elem
}

// ToBig returns the value of a 128-bit Elem as an arbitrary-precision
// integer, regardless of which Params produced it.
func ToBig(e Elem) *big.Int {
	v := new(big.Int).SetUint64(e.Hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(e.Lo))
	return v
}

// FromBig truncates x to its low 128 bits and packs it into an Elem.
func FromBig(x *big.Int) Elem {
	lo := new(big.Int).And(x, mask64)
	hi := new(big.Int).Rsh(x, 64)
	return Elem{Lo: lo.Uint64(), Hi: hi.Uint64()}
}

// FromUint64 packs a machine word into an Elem with Hi = 0.
func FromUint64(x uint64) Elem { return Elem{Lo: x} }

var mask64 = new(big.Int).SetUint64(^uint64(0))
