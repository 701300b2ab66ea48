package ring

import "errors"

var (
	ErrInvalidDegree          = errors.New("ring: N must be a power of two")
	ErrNoPrimitiveRoot        = errors.New("ring: modulus admits no primitive NthRoot-th root of unity")
	ErrModulusNotPrime        = errors.New("ring: modulus is not prime")
	ErrModulusCongruence      = errors.New("ring: modulus is not congruent to 1 mod NthRoot")
	ErrDegreeMismatch         = errors.New("ring: polynomial degree does not match the table")
	ErrRequiresNTT            = errors.New("ring: operand must be in NTT representation")
	ErrRepresentationMismatch = errors.New("ring: operands do not share the same NTT/coefficient representation")
)
