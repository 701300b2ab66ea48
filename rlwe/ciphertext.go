package rlwe

import (
	"fmt"

	"github.com/rtaiello/rlwe-sa/ring"
)

// Ciphertext is a pair of NTT-form polynomials (c0, c1) over a fixed
// modulus, satisfying c0 + c1*s = t*e + m for the secret key s the
// ciphertext was produced under. It is narrowed to exactly two
// components since this package never needs the higher-degree
// ciphertexts that relinearization or key-switching would produce.
type Ciphertext struct {
	C [2]*ring.Poly

	Table       *ring.Table
	PowerOfS    int
	ErrorBound  float64
	ErrorParams *ErrorParams
}

// Len reports the number of polynomial components, always 2 for this
// package's ciphertexts.
func (c *Ciphertext) Len() int { return len(c.C) }

// LogModulus reports ceil(log2(q)) for the ciphertext's modulus.
func (c *Ciphertext) LogModulus() int { return c.Table.Params.LogQ() }

// NumCoeffs reports the ring degree N.
func (c *Ciphertext) NumCoeffs() int { return c.Table.N }

// Error reports the ciphertext's current noise bound.
func (c *Ciphertext) Error() float64 { return c.ErrorBound }

// Component returns the i-th polynomial component (c0 for i == 0, c1 for
// i == 1).
func (c *Ciphertext) Component(i int) (*ring.Poly, error) {
	if i < 0 || i >= len(c.C) {
		return nil, fmt.Errorf("rlwe: %w: component index %d out of range", ErrInvalidArgument, i)
	}
	return c.C[i], nil
}

// AddInPlaceFst adds other into c's first component in place, leaving c's
// remaining components untouched — the operation the secure-aggregation
// path uses to accumulate ciphertexts across clients, since every
// ciphertext in a round shares the same c1 = a by construction and only
// c0 needs to accumulate. Both ciphertexts must share the same Table and
// PowerOfS; the resulting error bound is the sum of both bounds, since
// the two noise terms add without cancellation in the worst case.
func (c *Ciphertext) AddInPlaceFst(other *Ciphertext) error {
	if c.Table != other.Table {
		return ErrParamsMismatch
	}
	if c.PowerOfS != other.PowerOfS {
		return ErrPowerOfSMismatch
	}
	sum, err := c.Table.Add(c.C[0], other.C[0])
	if err != nil {
		return fmt.Errorf("rlwe: add in place: %w", err)
	}
	c.C[0] = sum
	c.ErrorBound += other.ErrorBound
	return nil
}
