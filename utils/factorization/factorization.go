// Package factorization provides integer factoring primitives used to
// locate primitive roots of unity when building NTT tables for moduli too
// large to hand-tabulate (the 80-bit SecAgg modulus in particular).
package factorization

import (
	"math/big"

	"github.com/rtaiello/rlwe-sa/utils/sampling"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// IsPrime reports whether n is prime, using Go's Baillie-PSW-backed
// Miller-Rabin test at a confidence level indistinguishable from certainty
// for the bit-sizes this package handles.
func IsPrime(n *big.Int) bool {
	return n.ProbablyPrime(20)
}

// GetFactors returns the unique prime factors of n. Small factors are
// pulled out by trial division; anything left over is split recursively
// with Pollard's rho, falling back to ECM (a sequence of random curves) if
// rho stalls (e.g. on n = p*p).
func GetFactors(n *big.Int) []*big.Int {
	m := new(big.Int).Set(n)
	seen := map[string]*big.Int{}

	var addFactor func(f *big.Int)
	addFactor = func(f *big.Int) {
		seen[f.String()] = f
	}

	for _, p := range smallPrimes {
		pb := big.NewInt(int64(p))
		if new(big.Int).Mod(m, pb).Sign() == 0 {
			addFactor(pb)
			for new(big.Int).Mod(m, pb).Sign() == 0 {
				m.Quo(m, pb)
			}
		}
	}

	var split func(m *big.Int)
	split = func(m *big.Int) {
		if m.Cmp(one) == 0 {
			return
		}
		if IsPrime(m) {
			addFactor(new(big.Int).Set(m))
			return
		}

		d := GetFactorPollardRho(m)
		if d == nil || d.Cmp(one) == 0 || d.Cmp(m) == 0 {
			d = GetFactorECM(m)
		}
		if d == nil || d.Cmp(one) == 0 || d.Cmp(m) == 0 {
			// Exhausted every factoring strategy; m resists splitting
			// within this package's budget. Record it as-is rather than
			// recursing forever.
			addFactor(new(big.Int).Set(m))
			return
		}

		q := new(big.Int).Quo(m, d)
		split(d)
		split(q)
	}
	split(m)

	factors := make([]*big.Int, 0, len(seen))
	for _, f := range seen {
		factors = append(factors, f)
	}
	return factors
}

// GetFactorPollardRho returns a (not necessarily prime) nontrivial factor
// of n using Pollard's rho with Floyd cycle detection, or nil if it fails to find
// one within its iteration budget.
func GetFactorPollardRho(n *big.Int) *big.Int {
	if n.Bit(0) == 0 {
		return new(big.Int).Set(two)
	}

	for attempt := 0; attempt < 64; attempt++ {
		c := sampling.RandInt(n)
		if c.Sign() == 0 {
			c.Set(one)
		}

		x := sampling.RandInt(n)
		y := new(big.Int).Set(x)
		d := new(big.Int).Set(one)

		f := func(v *big.Int) *big.Int {
			r := new(big.Int).Mul(v, v)
			r.Add(r, c)
			r.Mod(r, n)
			return r
		}

		tmp := new(big.Int)
		for i := 0; i < 1<<20 && d.Cmp(one) == 0; i++ {
			x = f(x)
			y = f(f(y))
			tmp.Sub(x, y)
			tmp.Abs(tmp)
			if tmp.Sign() == 0 {
				break
			}
			d.GCD(nil, nil, tmp, n)
		}

		if d.Cmp(one) != 0 && d.Cmp(n) != 0 {
			return d
		}
	}
	return nil
}

// GetFactorECM returns a nontrivial factor of n found via Lenstra's
// elliptic-curve method over a sequence of random curves, each driven by
// scalar multiplication of a base point by the product of small-prime
// powers up to a fixed smoothness bound. A non-invertible denominator
// encountered during scalar multiplication exposes the nontrivial factor
// directly as its GCD with n.
func GetFactorECM(n *big.Int) *big.Int {
	k := smoothScalar(2000)

	for curve := 0; curve < 64; curve++ {
		w, p := NewRandomWeierstrassCurve(n)
		if f := scalarMulFindFactor(&w, p, k, n); f != nil {
			return f
		}
	}
	// Exhausted the curve budget; fall back to trial division, which
	// always terminates for composite n within this package's bit-sizes.
	for _, pr := range smallPrimes {
		pb := big.NewInt(int64(pr))
		if new(big.Int).Mod(n, pb).Sign() == 0 {
			return pb
		}
	}
	return new(big.Int).Set(n)
}

// smoothScalar returns the product of every prime power below bound, the
// scalar ECM multiplies the base point by so that the point's order on a
// "lucky" curve divides it and scalar multiplication hits a non-invertible
// step.
func smoothScalar(bound int) *big.Int {
	k := big.NewInt(1)
	for _, p := range smallPrimes {
		if p >= bound {
			break
		}
		pw := int64(p)
		for pw*int64(p) < int64(bound) {
			pw *= int64(p)
		}
		k.Mul(k, big.NewInt(pw))
	}
	return k
}

// scalarMulFindFactor computes k*P on w using double-and-add via addChecked,
// returning the nontrivial factor of n exposed by a non-invertible slope
// denominator, or nil if k*P completes without one.
func scalarMulFindFactor(w *Weierstrass, p Point, k *big.Int, n *big.Int) *big.Int {
	result := Point{X: new(big.Int), Y: new(big.Int).SetInt64(1)} // point at infinity
	base := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			r, f := addChecked(w, result, base)
			if f != nil {
				return f
			}
			result = r
		}
		b, f := addChecked(w, base, base)
		if f != nil {
			return f
		}
		base = b
	}
	return nil
}

// addChecked mirrors Weierstrass.Add's slope computation far enough to
// check, before calling ModInverse, whether the denominator shares a
// nontrivial factor with n; if so that factor is returned directly instead
// of letting Add silently misbehave on a non-invertible value.
func addChecked(w *Weierstrass, p, q Point) (Point, *big.Int) {
	denom := new(big.Int)
	if p.X.Cmp(q.X) == 0 {
		denom.Add(q.Y, q.Y)
	} else {
		denom.Sub(q.X, p.X)
	}
	denom.Mod(denom, w.N)

	if denom.Sign() == 0 {
		return Point{}, nil
	}
	if g := new(big.Int).GCD(nil, nil, denom, w.N); g.Cmp(one) != 0 {
		return Point{}, g
	}

	return w.Add(p, q), nil
}

var smallPrimes = primesBelow(100000)

func primesBelow(bound int) []int {
	sieve := make([]bool, bound)
	var ps []int
	for i := 2; i < bound; i++ {
		if sieve[i] {
			continue
		}
		ps = append(ps, i)
		for j := i * i; j < bound; j += i {
			sieve[j] = true
		}
	}
	return ps
}
