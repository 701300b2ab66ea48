package sampling_test

import (
	"math/big"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/rtaiello/rlwe-sa/modarith"
	"github.com/rtaiello/rlwe-sa/prng"
	"github.com/rtaiello/rlwe-sa/sampling"
)

func newStream(t *testing.T) prng.Stream {
	t.Helper()
	s, err := prng.NewHKDFStream(make([]byte, prng.HKDFSeedLength))
	require.NoError(t, err)
	return s
}

// signedCentered maps a plain-domain residue in [0, q) onto its centered
// representative in (-q/2, q/2], the representation the original error
// sampler's callers use to reason about noise magnitude.
func signedCentered(x, q *big.Int) float64 {
	half := new(big.Int).Rsh(q, 1)
	if x.Cmp(half) > 0 {
		x = new(big.Int).Sub(x, q)
	}
	f := new(big.Float).SetInt(x)
	v, _ := f.Float64()
	return v
}

func TestUniformSamplerInRange(t *testing.T) {
	params, err := modarith.NewParams64(12289)
	require.NoError(t, err)
	u := sampling.NewUniformSampler(params)
	stream := newStream(t)

	vals, err := u.SampleSlice(stream, 2000)
	require.NoError(t, err)

	qBig := modarith.ToBig(params.Modulus())
	for _, v := range vals {
		require.True(t, modarith.ToBig(v).Cmp(qBig) < 0)
	}
}

func TestCenteredBinomialVariance(t *testing.T) {
	params, err := modarith.NewParams64(12289)
	require.NoError(t, err)

	const variance = 20
	c, err := sampling.NewCenteredBinomialSampler(params, variance)
	require.NoError(t, err)
	stream := newStream(t)

	vals, err := c.SampleSlice(stream, 4000)
	require.NoError(t, err)

	qBig := modarith.ToBig(params.Modulus())
	centered := make([]float64, len(vals))
	for i, v := range vals {
		centered[i] = signedCentered(modarith.ToBig(v), qBig)
	}

	mean, err := stats.Mean(centered)
	require.NoError(t, err)
	require.InDelta(t, 0, mean, 1.5)

	v, err := stats.Variance(centered)
	require.NoError(t, err)
	require.InDelta(t, float64(variance), v, float64(variance)*0.35)
}

func TestDiscreteGaussianStdDev(t *testing.T) {
	params, err := modarith.NewParams64(12289)
	require.NoError(t, err)

	const stddev = 4.5
	g, err := sampling.NewDiscreteGaussianSampler(params, stddev)
	require.NoError(t, err)
	stream := newStream(t)

	vals, err := g.SampleSlice(stream, 4000)
	require.NoError(t, err)

	qBig := modarith.ToBig(params.Modulus())
	centered := make([]float64, len(vals))
	for i, v := range vals {
		centered[i] = signedCentered(modarith.ToBig(v), qBig)
	}

	sd, err := stats.StandardDeviation(centered)
	require.NoError(t, err)
	require.InDelta(t, stddev, sd, stddev*0.5)
}
