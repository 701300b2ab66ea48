package ring_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/rtaiello/rlwe-sa/modarith"
	"github.com/rtaiello/rlwe-sa/ring"
)

func TestNewTableRejectsNonPowerOfTwo(t *testing.T) {
	p, err := modarith.NewParams64(12289)
	require.NoError(t, err)
	_, err = ring.NewTable(12, p)
	require.ErrorIs(t, err, ring.ErrInvalidDegree)
}

func TestNewTableRejectsBadCongruence(t *testing.T) {
	p, err := modarith.NewParams64(12289)
	require.NoError(t, err)
	// 12289 - 1 = 12288 = 2^12 * 3, not divisible by 2*8192.
	_, err = ring.NewTable(8192, p)
	require.ErrorIs(t, err, ring.ErrModulusCongruence)
}

func TestNTTRoundTripSmallModulus(t *testing.T) {
	const N = 16
	p, err := modarith.NewParams64(12289)
	require.NoError(t, err)

	table, err := ring.NewTable(N, p)
	require.NoError(t, err)
	require.True(t, table.PrimitiveRoot.Cmp(big.NewInt(0)) > 0)
	require.Len(t, table.Factors, len(table.Factors)) // factoring terminated

	coeffs := make([]uint64, N)
	for i := range coeffs {
		coeffs[i] = uint64(i * 37 % 12289)
	}
	poly, err := table.FromUint64Slice(coeffs)
	require.NoError(t, err)

	evalForm, err := table.NTT(poly)
	require.NoError(t, err)
	require.True(t, evalForm.IsNTT)

	back, err := table.INTT(evalForm)
	require.NoError(t, err)
	require.False(t, back.IsNTT)

	for i := 0; i < N; i++ {
		require.Equal(t, poly.Coeffs[i], back.Coeffs[i])
	}

	if diff := cmp.Diff(poly.Coeffs, back.Coeffs); diff != "" {
		t.Fatalf("round trip coefficients differ:\n%s", diff)
	}
}

func TestSubstituteIdentity(t *testing.T) {
	const N = 16
	p, err := modarith.NewParams64(12289)
	require.NoError(t, err)
	table, err := ring.NewTable(N, p)
	require.NoError(t, err)

	poly, err := table.FromUint64Slice(repeat(N, 7))
	require.NoError(t, err)

	out, err := table.Substitute(1, poly)
	require.NoError(t, err)
	if diff := cmp.Diff(poly.Coeffs, out.Coeffs); diff != "" {
		t.Fatalf("substitute by 1 should be identity:\n%s", diff)
	}
}

func TestSubstituteRejectsNTTForm(t *testing.T) {
	const N = 16
	p, err := modarith.NewParams64(12289)
	require.NoError(t, err)
	table, err := ring.NewTable(N, p)
	require.NoError(t, err)

	poly, err := table.FromUint64Slice(repeat(N, 1))
	require.NoError(t, err)
	ntt, err := table.NTT(poly)
	require.NoError(t, err)

	_, err = table.Substitute(3, ntt)
	require.ErrorIs(t, err, ring.ErrRequiresNTT)
}

func TestNTTIsLinear(t *testing.T) {
	const N = 16
	p, err := modarith.NewParams64(12289)
	require.NoError(t, err)
	table, err := ring.NewTable(N, p)
	require.NoError(t, err)

	a, err := table.FromUint64Slice(repeat(N, 3))
	require.NoError(t, err)
	b, err := table.FromUint64Slice(repeat(N, 5))
	require.NoError(t, err)

	sum, err := table.Add(a, b)
	require.NoError(t, err)

	nttA, _ := table.NTT(a)
	nttB, _ := table.NTT(b)
	nttSum, _ := table.NTT(sum)

	addedInNTT, err := table.Add(nttA, nttB)
	require.NoError(t, err)
	require.True(t, nttSum.Equal(addedInNTT))
}

func TestAddRejectsRepresentationMismatch(t *testing.T) {
	const N = 16
	p, err := modarith.NewParams64(12289)
	require.NoError(t, err)
	table, err := ring.NewTable(N, p)
	require.NoError(t, err)

	coeffForm, err := table.FromUint64Slice(repeat(N, 3))
	require.NoError(t, err)
	nttForm, err := table.NTT(coeffForm)
	require.NoError(t, err)

	_, err = table.Add(coeffForm, nttForm)
	require.ErrorIs(t, err, ring.ErrRepresentationMismatch)

	_, err = table.Sub(nttForm, coeffForm)
	require.ErrorIs(t, err, ring.ErrRepresentationMismatch)
}

func TestMulMatchesNTTMulCoeffsRoundTrip(t *testing.T) {
	const N = 16
	p, err := modarith.NewParams64(12289)
	require.NoError(t, err)
	table, err := ring.NewTable(N, p)
	require.NoError(t, err)

	a, err := table.FromUint64Slice(repeat(N, 3))
	require.NoError(t, err)
	b, err := table.FromUint64Slice(repeat(N, 5))
	require.NoError(t, err)

	// Mul on coefficient-domain operands should match the manual
	// NTT / MulCoeffs / INTT round trip it performs internally.
	viaMul, err := table.Mul(a, b)
	require.NoError(t, err)
	require.False(t, viaMul.IsNTT)

	nttA, err := table.NTT(a)
	require.NoError(t, err)
	nttB, err := table.NTT(b)
	require.NoError(t, err)
	nttProd, err := table.MulCoeffs(nttA, nttB)
	require.NoError(t, err)
	manual, err := table.INTT(nttProd)
	require.NoError(t, err)

	require.True(t, viaMul.Equal(manual))

	// Mul on already-NTT operands should delegate straight to MulCoeffs
	// and stay in NTT form.
	viaMulNTT, err := table.Mul(nttA, nttB)
	require.NoError(t, err)
	require.True(t, viaMulNTT.IsNTT)
	require.True(t, viaMulNTT.Equal(nttProd))

	_, err = table.Mul(a, nttB)
	require.ErrorIs(t, err, ring.ErrRepresentationMismatch)
}

func repeat(n int, v uint64) []uint64 {
	s := make([]uint64, n)
	for i := range s {
		s[i] = v
	}
	return s
}
