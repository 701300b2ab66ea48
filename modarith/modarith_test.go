package modarith

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParams64RoundTrip(t *testing.T) {
	p, err := NewParams64(12289) // NewHope modulus
	require.NoError(t, err)

	for _, x := range []uint64{0, 1, 2, 12288, 6144, 999} {
		imported := p.ImportInt(FromUint64(x))
		exported := p.ExportInt(imported)
		require.Equal(t, x%12289, exported.Lo)
	}
}

func TestParams64AddSubMulNeg(t *testing.T) {
	p, err := NewParams64(12289)
	require.NoError(t, err)

	a := p.ImportInt(FromUint64(100))
	b := p.ImportInt(FromUint64(9000))

	require.Equal(t, uint64(9100), p.ExportInt(p.Add(a, b)).Lo)
	require.Equal(t, uint64(12289-8900), p.ExportInt(p.Sub(a, b)).Lo)
	require.Equal(t, uint64(12289-100), p.ExportInt(p.Neg(a)).Lo)
	require.Equal(t, uint64(100*9000%12289), p.ExportInt(p.Mul(a, b)).Lo)
}

func TestParams64InvalidModulus(t *testing.T) {
	_, err := NewParams64(12288) // even
	require.ErrorIs(t, err, ErrInvalidModulus)
}

func TestParams128RoundTrip(t *testing.T) {
	q := new(big.Int).SetUint64(0xFFFFFFFFFFC0001) // 60-bit NTT-friendly-shaped prime, exercised at 128-bit width
	p, err := NewParams128(q)
	require.NoError(t, err)

	for _, x := range []uint64{0, 1, 2, 123456789, 0xFFFFFFFF} {
		imported := p.ImportInt(FromUint64(x))
		exported := p.ExportInt(imported)
		require.Equal(t, new(big.Int).Mod(new(big.Int).SetUint64(x), q), ToBig(exported))
	}
}

func TestParams128AddSubMulNeg(t *testing.T) {
	q := new(big.Int).SetUint64(0xFFFFFFFFFFC0001)
	p, err := NewParams128(q)
	require.NoError(t, err)

	a := p.ImportInt(FromUint64(123456789))
	b := p.ImportInt(FromUint64(987654321))

	wantAdd := new(big.Int).Mod(big.NewInt(123456789+987654321), q)
	require.Equal(t, wantAdd, ToBig(p.ExportInt(p.Add(a, b))))

	wantMul := new(big.Int).Mod(new(big.Int).Mul(big.NewInt(123456789), big.NewInt(987654321)), q)
	require.Equal(t, wantMul, ToBig(p.ExportInt(p.Mul(a, b))))

	negA := p.ExportInt(p.Neg(a))
	sum := new(big.Int).Add(ToBig(negA), big.NewInt(123456789))
	sum.Mod(sum, q)
	require.Equal(t, 0, sum.Sign())
}

func TestParams128OddityRejected(t *testing.T) {
	_, err := NewParams128(big.NewInt(100))
	require.ErrorIs(t, err, ErrInvalidModulus)
}
