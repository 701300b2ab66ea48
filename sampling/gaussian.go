package sampling

import (
	"math"
	"math/big"

	"github.com/rtaiello/rlwe-sa/modarith"
	"github.com/rtaiello/rlwe-sa/prng"
)

// gaussianTailCut bounds how many standard deviations a drawn sample may
// land from zero before being rejected and redrawn, the discrete analogue
// of a truncated Gaussian's "bound" parameter.
const gaussianTailCut = 12.0

// DiscreteGaussianSampler draws integer coefficients from a distribution
// statistically close to a discrete Gaussian of the given standard
// deviation, centered at zero. It uses a Box-Muller transform over two
// uniform floats drawn from the stream, rejecting draws past the tail
// cut, then maps the signed result onto the modulus's centered
// representative: negative draws become q - |x|.
type DiscreteGaussianSampler struct {
	params modarith.Params
	stddev float64
}

// NewDiscreteGaussianSampler builds a sampler for the given standard
// deviation over params's modulus.
func NewDiscreteGaussianSampler(params modarith.Params, stddev float64) (*DiscreteGaussianSampler, error) {
	if stddev < 0 {
		return nil, ErrInvalidStdDev
	}
	return &DiscreteGaussianSampler{params: params, stddev: stddev}, nil
}

// Sample draws one coefficient in plain (non-Montgomery) form.
func (g *DiscreteGaussianSampler) Sample(stream prng.Stream) (modarith.Elem, error) {
	qBig := modarith.ToBig(g.params.Modulus())
	bound := gaussianTailCut * g.stddev

	for {
		u1, err := uniformFloat01(stream)
		if err != nil {
			return modarith.Elem{}, err
		}
		u2, err := uniformFloat01(stream)
		if err != nil {
			return modarith.Elem{}, err
		}
		// u1 == 0 would send Log to -Inf; redraw rather than special-case.
		if u1 == 0 {
			continue
		}

		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
		x := math.Round(z * g.stddev)

		if math.Abs(x) > bound {
			continue
		}

		xi := int64(x)
		var coeffMod *big.Int
		if xi < 0 {
			coeffMod = new(big.Int).Sub(qBig, big.NewInt(-xi))
		} else {
			coeffMod = big.NewInt(xi)
		}
		return modarith.FromBig(coeffMod), nil
	}
}

// SampleSlice draws n coefficients in plain form.
func (g *DiscreteGaussianSampler) SampleSlice(stream prng.Stream, n int) ([]modarith.Elem, error) {
	out := make([]modarith.Elem, n)
	for i := range out {
		v, err := g.Sample(stream)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// uniformFloat01 draws a uniform float64 in [0, 1) from 8 stream bytes.
func uniformFloat01(stream prng.Stream) (float64, error) {
	r, err := stream.Rand64()
	if err != nil {
		return 0, err
	}
	return float64(r) / 1.8446744073709552e+19, nil
}
