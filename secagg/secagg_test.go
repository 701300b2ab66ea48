package secagg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rtaiello/rlwe-sa/rlwe"
	"github.com/rtaiello/rlwe-sa/secagg"
)

const logT = 11
const plaintextModulus = 1<<logT + 1 // t = 2049

// S1: input_size = 2048, log_t = 11, n = 1 client, all-zero plaintext.
func TestScenarioS1AllZero(t *testing.T) {
	e, err := secagg.NewEngine(secagg.DefaultN, logT, nil, secagg.DefaultStdDev)
	require.NoError(t, err)

	key, err := e.SampleKey()
	require.NoError(t, err)

	plaintext := make([]uint64, secagg.DefaultN)
	cts, err := e.Encrypt(key, plaintext)
	require.NoError(t, err)

	out, err := e.Decrypt(key, cts)
	require.NoError(t, err)
	require.Equal(t, plaintext, out)
}

// S2: input_size = 2048, log_t = 11, n = 1 client, plaintext from
// sample_plaintext(2048, 11) with the fixed MT19937 seed.
func TestScenarioS2DeterministicPlaintext(t *testing.T) {
	e, err := secagg.NewEngine(secagg.DefaultN, logT, nil, secagg.DefaultStdDev)
	require.NoError(t, err)

	key, err := e.SampleKey()
	require.NoError(t, err)

	plaintext := secagg.SamplePlaintext(secagg.DefaultN, logT)
	cts, err := e.Encrypt(key, plaintext)
	require.NoError(t, err)

	out, err := e.Decrypt(key, cts)
	require.NoError(t, err)
	require.Equal(t, plaintext, out)
}

// S3: input_size = 8192, log_t = 11, n = 10 clients, every client
// encrypting the same plaintext (sample_plaintext(8192, 11)) under its own
// key. The aggregated sum mod t equals 10*plaintext coordinatewise.
func TestScenarioS3TenClientsSamePlaintext(t *testing.T) {
	const inputSize = 4 * secagg.DefaultN
	const n = 10

	e, err := secagg.NewEngine(inputSize, logT, nil, secagg.DefaultStdDev)
	require.NoError(t, err)

	plaintext := secagg.SamplePlaintext(inputSize, logT)

	var sumKey *rlwe.SecretKey
	var sumCts []*rlwe.Ciphertext
	for i := 0; i < n; i++ {
		key, err := e.SampleKey()
		require.NoError(t, err)
		cts, err := e.Encrypt(key, plaintext)
		require.NoError(t, err)

		if sumKey == nil {
			sumKey, sumCts = key, cts
			continue
		}
		sumKey, err = e.SumKeys(sumKey, key)
		require.NoError(t, err)
		sumCts, err = e.Aggregate(sumCts, cts)
		require.NoError(t, err)
	}

	out, err := e.Decrypt(sumKey, sumCts)
	require.NoError(t, err)

	for i, m := range plaintext {
		want := (n * m) % plaintextModulus
		require.Equal(t, want, out[i], "coefficient %d", i)
	}
}

// S4: input_size = 2048, log_t = 11, n = 10 clients, distinct keys and
// plaintexts. A key reconstructed via CreateKey(Sum of ConvertKey shares)
// decrypts the aggregated ciphertext to the coordinatewise plaintext sum.
func TestScenarioS4ConvertKeyRoundTrip(t *testing.T) {
	const n = 10

	e, err := secagg.NewEngine(secagg.DefaultN, logT, nil, secagg.DefaultStdDev)
	require.NoError(t, err)

	coordSum := make([]uint64, secagg.DefaultN)
	var convertedSum []uint64
	var aggCts []*rlwe.Ciphertext

	for i := 0; i < n; i++ {
		key, err := e.SampleKey()
		require.NoError(t, err)

		plaintext := make([]uint64, secagg.DefaultN)
		for j := range plaintext {
			plaintext[j] = uint64(j+i*37) % plaintextModulus
		}
		for j, m := range plaintext {
			coordSum[j] = (coordSum[j] + m) % plaintextModulus
		}

		cts, err := e.Encrypt(key, plaintext)
		require.NoError(t, err)

		converted, err := e.ConvertKey(key)
		require.NoError(t, err)

		if convertedSum == nil {
			convertedSum = converted
			aggCts = cts
			continue
		}
		for j := range convertedSum {
			convertedSum[j] = (convertedSum[j] + converted[j]) % secagg.ModulusP
		}
		aggCts, err = e.Aggregate(aggCts, cts)
		require.NoError(t, err)
	}

	reconstructed, err := e.CreateKey(convertedSum)
	require.NoError(t, err)

	out, err := e.Decrypt(reconstructed, aggCts)
	require.NoError(t, err)
	require.Equal(t, coordSum, out)
}

// S5: two engines built from the same 32-byte seed produce byte-identical
// encryptions when driven through the same call sequence.
func TestScenarioS5SeedDeterminism(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i * 7)
	}

	e1, err := secagg.NewEngine(secagg.DefaultN, logT, seed, secagg.DefaultStdDev)
	require.NoError(t, err)
	e2, err := secagg.NewEngine(secagg.DefaultN, logT, seed, secagg.DefaultStdDev)
	require.NoError(t, err)

	k1, err := e1.SampleKey()
	require.NoError(t, err)
	k2, err := e2.SampleKey()
	require.NoError(t, err)
	require.True(t, k1.Value.Equal(k2.Value))

	plaintext := secagg.SamplePlaintext(secagg.DefaultN, logT)
	cts1, err := e1.Encrypt(k1, plaintext)
	require.NoError(t, err)
	cts2, err := e2.Encrypt(k2, plaintext)
	require.NoError(t, err)

	require.Equal(t, len(cts1), len(cts2))
	for i := range cts1 {
		require.True(t, cts1[i].C[0].Equal(cts2[i].C[0]))
		require.True(t, cts1[i].C[1].Equal(cts2[i].C[1]))
	}
}

// S6: a plaintext whose length does not match input_size fails with
// InvalidArgument.
func TestScenarioS6PlaintextLengthMismatch(t *testing.T) {
	e, err := secagg.NewEngine(secagg.DefaultN, logT, nil, secagg.DefaultStdDev)
	require.NoError(t, err)

	key, err := e.SampleKey()
	require.NoError(t, err)

	_, err = e.Encrypt(key, make([]uint64, secagg.DefaultN-1))
	require.ErrorIs(t, err, secagg.ErrInvalidArgument)
}

func TestFingerprintDeterministic(t *testing.T) {
	coeffs := []uint64{1, 2, 3, 4, 5}
	require.Equal(t, secagg.Fingerprint(coeffs), secagg.Fingerprint(coeffs))
}

func TestPadToPowerOfTwo(t *testing.T) {
	in := make([]uint64, 5)
	out := secagg.PadToPowerOfTwo(in, 4)
	require.Equal(t, 8, len(out))

	exact := make([]uint64, 8)
	require.Equal(t, exact, secagg.PadToPowerOfTwo(exact, 4))
}
