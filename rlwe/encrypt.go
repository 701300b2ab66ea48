package rlwe

import (
	"fmt"

	"github.com/rtaiello/rlwe-sa/modarith"
	"github.com/rtaiello/rlwe-sa/prng"
	"github.com/rtaiello/rlwe-sa/ring"
	"github.com/rtaiello/rlwe-sa/sampling"
)

// Encrypt symmetrically encrypts plaintext (in coefficient representation)
// under key, using a as the uniformly-random second ciphertext component
// (already in NTT representation — callers in the aggregation path
// precompute one such a per chunk from a shared seed so every client's
// ciphertext for a given chunk shares the same a). logT selects the
// plaintext modulus t = 2^logT+1 the message is encoded under.
//
// The construction follows the textbook symmetric RLWE scheme: sample a
// small error e from the key's own error distribution, compute
// c0 = a*s + t*e + m and c1 = -a, so that c0 + c1*s = t*e + m — the
// relation Decrypt inverts.
func Encrypt(key *SecretKey, a, plaintext *ring.Poly, logT int, errParams *ErrorParams, stream prng.Stream) (*Ciphertext, error) {
	table := key.Table
	if a.N() != table.N || plaintext.N() != table.N {
		return nil, ErrParamsMismatch
	}
	if !a.IsNTT {
		return nil, fmt.Errorf("rlwe: encrypt: a: %w", ErrRepresentationMismatch)
	}

	c, err := sampling.NewCenteredBinomialSampler(table.Params, key.Variance)
	if err != nil {
		return nil, fmt.Errorf("rlwe: encrypt: %w", err)
	}
	eCoeffs, err := c.SampleSlice(stream, table.N)
	if err != nil {
		return nil, fmt.Errorf("rlwe: encrypt: %w", err)
	}
	eRaw, err := table.FromElemSlice(eCoeffs)
	if err != nil {
		return nil, fmt.Errorf("rlwe: encrypt: %w", err)
	}
	e, err := table.NTT(eRaw)
	if err != nil {
		return nil, fmt.Errorf("rlwe: encrypt: %w", err)
	}

	m := plaintext
	if !m.IsNTT {
		m, err = table.NTT(plaintext)
		if err != nil {
			return nil, fmt.Errorf("rlwe: encrypt: %w", err)
		}
	}

	tElem := table.Params.ImportInt(modarith.FromBig(plaintextModulus(logT)))
	tE, err := table.ScaleByScalar(e, tElem)
	if err != nil {
		return nil, fmt.Errorf("rlwe: encrypt: %w", err)
	}

	as, err := table.MulCoeffs(a, key.Value)
	if err != nil {
		return nil, fmt.Errorf("rlwe: encrypt: %w", err)
	}
	c0, err := table.Add(as, tE)
	if err != nil {
		return nil, fmt.Errorf("rlwe: encrypt: %w", err)
	}
	c0, err = table.Add(c0, m)
	if err != nil {
		return nil, fmt.Errorf("rlwe: encrypt: %w", err)
	}
	c1, err := table.Neg(a)
	if err != nil {
		return nil, fmt.Errorf("rlwe: encrypt: %w", err)
	}

	ct := &Ciphertext{
		Table:       table,
		PowerOfS:    1,
		ErrorBound:  errParams.BEncryption,
		ErrorParams: errParams,
	}
	ct.C[0] = c0
	ct.C[1] = c1
	return ct, nil
}
