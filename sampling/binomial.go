package sampling

import (
	"math/big"
	"math/bits"

	"github.com/rtaiello/rlwe-sa/modarith"
	"github.com/rtaiello/rlwe-sa/prng"
)

// CenteredBinomialSampler draws coefficients from a centered binomial
// distribution CBD(variance): the sum of 2*variance independent fair coin
// flips minus the sum of another 2*variance independent fair coin flips
// (each flip contributes 1/4, so the difference has variance `variance`),
// reduced mod q. NewHope's analysis (Alkim, Ducas, Poppelmann, Schwabe)
// shows this is statistically indistinguishable from a discrete Gaussian
// of matching variance while being both faster and immune to the timing
// leaks a table-driven Gaussian sampler invites — the same tradeoff the
// original error sampler makes.
type CenteredBinomialSampler struct {
	params   modarith.Params
	variance uint64
}

// NewCenteredBinomialSampler builds a sampler for the given variance over
// params's modulus. variance must not exceed MaxVariance.
func NewCenteredBinomialSampler(params modarith.Params, variance uint64) (*CenteredBinomialSampler, error) {
	if variance > MaxVariance {
		return nil, ErrInvalidVariance
	}
	return &CenteredBinomialSampler{params: params, variance: variance}, nil
}

// Sample draws one coefficient in plain (non-Montgomery) form.
//
// The accumulator starts at q so that every intermediate value stays
// non-negative (the ±1-per-bit-pair terms sampled never approach q in
// magnitude for any variance below MaxVariance), then a single
// conditional subtraction brings the result back into [0, q), mirroring
// the original SampleFromErrorDistribution exactly.
func (c *CenteredBinomialSampler) Sample(stream prng.Stream) (modarith.Elem, error) {
	qBig := modarith.ToBig(c.params.Modulus())
	coefficient := new(big.Int).Set(qBig)

	k := c.variance << 1
	for k > 0 {
		switch {
		case k >= 64:
			r1, err := stream.Rand64()
			if err != nil {
				return modarith.Elem{}, err
			}
			r2, err := stream.Rand64()
			if err != nil {
				return modarith.Elem{}, err
			}
			coefficient.Add(coefficient, big.NewInt(int64(bits.OnesCount64(r1))))
			coefficient.Sub(coefficient, big.NewInt(int64(bits.OnesCount64(r2))))
			k -= 64

		case k >= 8:
			r1, err := stream.Rand8()
			if err != nil {
				return modarith.Elem{}, err
			}
			r2, err := stream.Rand8()
			if err != nil {
				return modarith.Elem{}, err
			}
			coefficient.Add(coefficient, big.NewInt(int64(bits.OnesCount8(r1))))
			coefficient.Sub(coefficient, big.NewInt(int64(bits.OnesCount8(r2))))
			k -= 8

		default:
			mask := byte(1<<k - 1)
			r1, err := stream.Rand8()
			if err != nil {
				return modarith.Elem{}, err
			}
			r2, err := stream.Rand8()
			if err != nil {
				return modarith.Elem{}, err
			}
			coefficient.Add(coefficient, big.NewInt(int64(bits.OnesCount8(r1&mask))))
			coefficient.Sub(coefficient, big.NewInt(int64(bits.OnesCount8(r2&mask))))
			k = 0
		}
	}

	if coefficient.Cmp(qBig) >= 0 {
		coefficient.Sub(coefficient, qBig)
	}
	return modarith.FromBig(coefficient), nil
}

// SampleSlice draws n coefficients in plain form.
func (c *CenteredBinomialSampler) SampleSlice(stream prng.Stream, n int) ([]modarith.Elem, error) {
	out := make([]modarith.Elem, n)
	for i := range out {
		v, err := c.Sample(stream)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
