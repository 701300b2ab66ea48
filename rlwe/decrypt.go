package rlwe

import (
	"fmt"
	"math/big"

	"github.com/rtaiello/rlwe-sa/modarith"
)

// Decrypt recovers the plaintext coefficients (each reduced into
// [0, t)) that ct encrypts under key, where t = 2^logT+1 is the plaintext
// modulus ct was produced with.
//
// It computes d = c0 + c1*s in NTT representation, inverse-transforms to
// coefficient form, then for each coefficient takes its centered
// representative x' in (-q/2, q/2] and reports ((x' mod t) + t) mod t —
// folding the noise term t*e back out since e contributes a multiple of t
// that vanishes under reduction mod t.
func Decrypt(key *SecretKey, ct *Ciphertext, logT int) ([]uint64, error) {
	table := key.Table
	if ct.Table != table {
		return nil, ErrParamsMismatch
	}
	if ct.PowerOfS != 1 {
		return nil, ErrPowerOfSMismatch
	}

	c1s, err := table.MulCoeffs(ct.C[1], key.Value)
	if err != nil {
		return nil, fmt.Errorf("rlwe: decrypt: %w", err)
	}
	d, err := table.Add(ct.C[0], c1s)
	if err != nil {
		return nil, fmt.Errorf("rlwe: decrypt: %w", err)
	}

	coeffPoly, err := table.INTT(d)
	if err != nil {
		return nil, fmt.Errorf("rlwe: decrypt: %w", err)
	}
	plain, err := table.ToBigSlice(coeffPoly)
	if err != nil {
		return nil, fmt.Errorf("rlwe: decrypt: %w", err)
	}

	qBig := modarith.ToBig(table.Params.Modulus())
	half := new(big.Int).Rsh(qBig, 1)
	tBig := plaintextModulus(logT)

	out := make([]uint64, len(plain))
	for i, c := range plain {
		x := modarith.ToBig(c)
		if x.Cmp(half) > 0 {
			x = new(big.Int).Sub(x, qBig)
		}
		x.Mod(x, tBig)
		x.Add(x, tBig)
		x.Mod(x, tBig)
		out[i] = x.Uint64()
	}
	return out, nil
}
