package rlwe

import (
	"fmt"
	"math/big"

	"github.com/rtaiello/rlwe-sa/modarith"
	"github.com/rtaiello/rlwe-sa/prng"
	"github.com/rtaiello/rlwe-sa/ring"
	"github.com/rtaiello/rlwe-sa/sampling"
)

// SecretKey is a small-norm element of R_q, always stored in NTT
// (evaluation) representation — every place it is used (encryption,
// addition, conversion) immediately needs it in that form, so there is no
// reason to ever materialize the coefficient form except transiently
// inside ConvertKey/CreateKey.
type SecretKey struct {
	Value    *ring.Poly
	Table    *ring.Table
	Variance uint64
}

// SampleKey draws a fresh secret key from the centered binomial
// distribution of the given variance, over table's modulus.
func SampleKey(table *ring.Table, variance uint64, stream prng.Stream) (*SecretKey, error) {
	c, err := sampling.NewCenteredBinomialSampler(table.Params, variance)
	if err != nil {
		return nil, fmt.Errorf("rlwe: sample key: %w", err)
	}
	coeffs, err := c.SampleSlice(stream, table.N)
	if err != nil {
		return nil, fmt.Errorf("rlwe: sample key: %w", err)
	}

	p := ring.NewPoly(table.N)
	for i, c := range coeffs {
		p.Coeffs[i] = table.Params.ImportInt(c)
	}
	ntt, err := table.NTT(p)
	if err != nil {
		return nil, fmt.Errorf("rlwe: sample key: %w", err)
	}
	return &SecretKey{Value: ntt, Table: table, Variance: variance}, nil
}

// CreateKeyFromCoeffs builds a SecretKey directly from plain-domain
// coefficients (not necessarily small-norm — callers reconstructing an
// aggregated key pass arbitrary residues mod q), lifting them into
// Montgomery/NTT form.
func CreateKeyFromCoeffs(table *ring.Table, coeffs []uint64, variance uint64) (*SecretKey, error) {
	p, err := table.FromUint64Slice(coeffs)
	if err != nil {
		return nil, fmt.Errorf("rlwe: create key from coeffs: %w", err)
	}
	ntt, err := table.NTT(p)
	if err != nil {
		return nil, fmt.Errorf("rlwe: create key from coeffs: %w", err)
	}
	return &SecretKey{Value: ntt, Table: table, Variance: variance}, nil
}

// Add returns a new SecretKey holding the coordinatewise sum of k and
// other in NTT representation — keys are never mutated in place. Both
// keys must share the same Table and the same Variance: summing keys
// sampled under different noise budgets would produce a key whose
// Variance field no longer describes its actual distribution, silently
// invalidating every downstream bound that trusts it.
func (k *SecretKey) Add(other *SecretKey) (*SecretKey, error) {
	if k.Table != other.Table || k.Variance != other.Variance {
		return nil, ErrParamsMismatch
	}
	sum, err := k.Table.Add(k.Value, other.Value)
	if err != nil {
		return nil, fmt.Errorf("rlwe: add keys: %w", err)
	}
	return &SecretKey{Value: sum, Table: k.Table, Variance: k.Variance}, nil
}

// ConvertKey lifts k's coefficients from Z_q onto Z_p via a
// modulus-balanced centered conversion: each coefficient c in [0, q) is
// interpreted as its centered representative c' in (-q/2, q/2], then
// reduced into [0, p). This is what lets key shares produced over the
// large aggregation modulus q be serialized compactly over the smaller
// modulus p without the additive aggregate wrapping around q in a way
// that would not survive the trip through p — additivity holds as long
// as the true sum of clients' centered keys never exceeds p/2 in
// magnitude, i.e. p must be chosen large enough for the expected number
// of participants. pTable's modulus is the target modulus p.
func (k *SecretKey) ConvertKey(pTable *ring.Table) ([]uint64, error) {
	coeffPoly, err := k.Table.INTT(k.Value)
	if err != nil {
		return nil, fmt.Errorf("rlwe: convert key: %w", err)
	}
	plain, err := k.Table.ToBigSlice(coeffPoly)
	if err != nil {
		return nil, fmt.Errorf("rlwe: convert key: %w", err)
	}

	qBig := modarith.ToBig(k.Table.Params.Modulus())
	pBig := modarith.ToBig(pTable.Params.Modulus())
	half := new(big.Int).Rsh(qBig, 1)

	out := make([]uint64, len(plain))
	for i, c := range plain {
		cBig := modarith.ToBig(c)
		if cBig.Cmp(half) > 0 {
			cBig = new(big.Int).Sub(cBig, qBig)
		}
		cBig.Mod(cBig, pBig)
		out[i] = cBig.Uint64() // safe: pBig is chosen to fit in 64 bits (e.g. the NewHope modulus)
	}
	return out, nil
}

// CreateKeyFromConverted is the inverse of ConvertKey: it takes
// coefficients produced by ConvertKey (residues mod p, the sum of one or
// more clients' converted shares) and lifts them back to a SecretKey over
// q, interpreting each residue c in [0, p) as its centered representative
// c' in (-p/2, p/2], then mapping it onto q as q-(p-c) when negative or c
// unchanged when non-negative — the exact inverse of the q-to-p
// conversion above.
func CreateKeyFromConverted(qTable *ring.Table, pTable *ring.Table, coeffsModP []uint64, variance uint64) (*SecretKey, error) {
	if len(coeffsModP) != qTable.N {
		return nil, ErrInvalidArgument
	}

	qBig := modarith.ToBig(qTable.Params.Modulus())
	pBig := modarith.ToBig(pTable.Params.Modulus())
	half := new(big.Int).Rsh(pBig, 1)

	// The lifted value can require the full width of q (up to 80 bits for
	// the aggregation modulus), so it is carried as modarith.Elem rather
	// than truncated into a uint64.
	raw := make([]modarith.Elem, len(coeffsModP))
	for i, c := range coeffsModP {
		cBig := new(big.Int).SetUint64(c)
		cBig.Mod(cBig, pBig)
		var lifted *big.Int
		if cBig.Cmp(half) > 0 {
			lifted = new(big.Int).Sub(qBig, new(big.Int).Sub(pBig, cBig))
		} else {
			lifted = cBig
		}
		lifted.Mod(lifted, qBig)
		raw[i] = modarith.FromBig(lifted)
	}

	p, err := qTable.FromElemSlice(raw)
	if err != nil {
		return nil, fmt.Errorf("rlwe: create key from converted: %w", err)
	}
	ntt, err := qTable.NTT(p)
	if err != nil {
		return nil, fmt.Errorf("rlwe: create key from converted: %w", err)
	}
	return &SecretKey{Value: ntt, Table: qTable, Variance: variance}, nil
}
