package secagg

import "errors"

// ErrInvalidArgument is returned for caller-supplied values this package
// rejects outright: an input size that is not a multiple of the ring
// degree, a plaintext modulus exponent outside the valid range, or a
// mismatched ciphertext count passed to Aggregate.
var ErrInvalidArgument = errors.New("secagg: invalid argument")
