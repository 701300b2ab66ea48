package sampling

import "errors"

var (
	ErrInvalidVariance = errors.New("sampling: variance exceeds the maximum supported by the centered binomial sampler")
	ErrInvalidStdDev   = errors.New("sampling: standard deviation must be non-negative")
)

// MaxVariance bounds the centered binomial sampler's variance parameter,
// mirroring the kMaxVariance guard in the original sampler: beyond this the
// 64-bit popcount accumulation loop no longer comfortably fits the
// intermediate coefficient's headroom above the modulus.
const MaxVariance = 1 << 16
