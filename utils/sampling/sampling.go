// Package sampling provides crypto/rand-backed big.Int sampling for the
// randomized restarts factorization's Pollard-rho and ECM routines run —
// deliberately separate from this module's own prng.Stream abstraction,
// since neither algorithm needs a reproducible stream: each restart only
// needs a fresh, uncorrelated candidate, never the determinism the
// aggregation engine's key/noise sampling relies on.
package sampling

import (
	"crypto/rand"
	"math/big"
)

// RandInt generates a random Int in [0, max-1], used to pick Pollard-rho's
// polynomial constant and starting point, and ECM's curve coefficients and
// base point.
func RandInt(max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(rand.Reader, max); err != nil {
		panic(err)
	}
	return
}
