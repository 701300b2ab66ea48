package ring

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/rtaiello/rlwe-sa/modarith"
	"github.com/rtaiello/rlwe-sa/utils"
	"github.com/rtaiello/rlwe-sa/utils/factorization"
)

// Table stores the precomputation needed to run the NTT over R_q =
// Z_q[X]/(X^N+1) for a single modulus q: the bit-reversed powers of a
// primitive 2N-th root of unity and its inverse, in Montgomery form, plus
// N^-1 mod q, also in Montgomery form. It works through a modarith.Params
// instead of a hardwired uint64 modulus, since the 80-bit SecAgg modulus
// needs the Params128 path while the auxiliary modulus fits Params64.
type Table struct {
	N       int
	LogN    int
	NthRoot uint64
	Params  modarith.Params

	PrimitiveRoot *big.Int
	Factors       []*big.Int

	RootsForward  []modarith.Elem
	RootsBackward []modarith.Elem
	NInv          modarith.Elem
}

// NewTable builds the NTT table for degree N over the modulus behind
// params. N must be a power of two; the modulus must be prime and
// congruent to 1 mod 2N.
func NewTable(N int, params modarith.Params) (*Table, error) {
	if N <= 0 || N&(N-1) != 0 {
		return nil, ErrInvalidDegree
	}

	qBig := modarith.ToBig(params.Modulus())
	if !factorization.IsPrime(qBig) {
		return nil, ErrModulusNotPrime
	}

	nthRoot := uint64(2 * N)
	mod := new(big.Int).Mod(qBig, new(big.Int).SetUint64(nthRoot))
	if mod.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrModulusCongruence
	}

	t := &Table{
		N:       N,
		LogN:    bits.Len64(uint64(N)) - 1,
		NthRoot: nthRoot,
		Params:  params,
	}

	qMinus1 := new(big.Int).Sub(qBig, big.NewInt(1))
	t.Factors = factorization.GetFactors(qMinus1)

	g, err := findPrimitiveRoot(qBig, qMinus1, t.Factors)
	if err != nil {
		return nil, err
	}
	t.PrimitiveRoot = g

	if err := t.genNTTParams(qBig, qMinus1); err != nil {
		return nil, err
	}
	return t, nil
}

// findPrimitiveRoot searches upward from g=3 for a primitive root of q,
// i.e. a generator whose order is exactly q-1, verified via Fermat's
// little theorem against every unique prime factor of q-1.
func findPrimitiveRoot(q, qMinus1 *big.Int, factors []*big.Int) (*big.Int, error) {
	g := big.NewInt(2)
	one := big.NewInt(1)

	for tries := 0; tries < 1<<20; tries++ {
		g = new(big.Int).Add(g, one)

		isPrimitive := true
		for _, f := range factors {
			e := new(big.Int).Quo(qMinus1, f)
			if new(big.Int).Exp(g, e, q).Cmp(one) == 0 {
				isPrimitive = false
				break
			}
		}
		if isPrimitive {
			return g, nil
		}
	}
	return nil, ErrNoPrimitiveRoot
}

// genNTTParams fills RootsForward, RootsBackward and NInv from the
// primitive root: psi = g^((q-1)/2N) is a primitive 2N-th root of unity,
// tabulated as bit-reversed running powers in Montgomery form.
func (t *Table) genNTTParams(qBig, qMinus1 *big.Int) error {
	params := t.Params
	half := t.NthRoot >> 1
	logHalf := uint64(bits.Len64(half) - 1)

	e := new(big.Int).Quo(qMinus1, new(big.Int).SetUint64(t.NthRoot))
	psi := new(big.Int).Exp(t.PrimitiveRoot, e, qBig)
	psiInv := new(big.Int).ModInverse(psi, qBig)
	if psiInv == nil {
		return fmt.Errorf("ring: primitive root has no inverse mod q")
	}

	nInvBig := new(big.Int).ModInverse(big.NewInt(int64(t.N)), qBig)
	if nInvBig == nil {
		return fmt.Errorf("ring: N has no inverse mod q")
	}
	t.NInv = params.ImportInt(modarith.FromBig(nInvBig))

	psiMont := params.ImportInt(modarith.FromBig(psi))
	psiInvMont := params.ImportInt(modarith.FromBig(psiInv))
	one := params.ImportInt(modarith.FromUint64(1))

	t.RootsForward = make([]modarith.Elem, half)
	t.RootsBackward = make([]modarith.Elem, half)
	t.RootsForward[0] = one
	t.RootsBackward[0] = one

	for j := uint64(1); j < half; j++ {
		prev := utils.BitReverse64(j-1, logHalf)
		next := utils.BitReverse64(j, logHalf)
		t.RootsForward[next] = params.Mul(t.RootsForward[prev], psiMont)
		t.RootsBackward[next] = params.Mul(t.RootsBackward[prev], psiInvMont)
	}
	return nil
}

// NewPoly allocates a zero polynomial of the table's degree.
func (t *Table) NewPoly() *Poly {
	return NewPoly(t.N)
}
