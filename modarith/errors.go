package modarith

import "errors"

// Sentinel errors returned by the modarith package. Higher layers wrap these
// with fmt.Errorf("...: %w", ...) to add context, the same way the ring and
// rlwe packages do.
var (
	// ErrImport is returned when a modulus cannot be represented in the
	// chosen Width.
	ErrImport = errors.New("modarith: modulus does not fit the chosen width")

	// ErrInvalidModulus is returned when a candidate modulus is zero,
	// negative or even. A modulus too wide for the chosen width yields
	// ErrImport instead.
	ErrInvalidModulus = errors.New("modarith: modulus must be odd and fit the chosen width")
)
