package secagg

import (
	"fmt"
	"math"

	"github.com/rtaiello/rlwe-sa/modarith"
	"github.com/rtaiello/rlwe-sa/prng"
	"github.com/rtaiello/rlwe-sa/ring"
	"github.com/rtaiello/rlwe-sa/rlwe"
	"github.com/rtaiello/rlwe-sa/sampling"
)

// Engine is a secure-aggregation context: it fixes the aggregation
// modulus q (ring degree DefaultN), the auxiliary serialization modulus p,
// the plaintext modulus exponent logT, and the error distribution
// variance, then derives K = inputSize/DefaultN uniformly-random
// polynomials (the "as") from its seed — one per chunk — that every
// client encrypting under this seed must reuse so their ciphertexts'
// second components line up.
type Engine struct {
	inputSize int
	logT      int
	variance  uint64

	qParams *modarith.Params128
	pParams *modarith.Params64
	qTable  *ring.Table
	pTable  *ring.Table

	errParams *rlwe.ErrorParams

	seed   []byte
	stream prng.Stream

	as []*ring.Poly
}

// NewEngine builds a secure-aggregation context for a vector of
// inputSize coefficients, using plaintext modulus t = 2^logT+1. If seed is
// nil, a fresh random seed is generated; otherwise seed must be exactly
// prng.HKDFSeedLength bytes and every draw the engine makes (key sampling,
// the per-chunk uniform polynomials, encryption noise) is a deterministic
// function of it — two engines built from the same seed and driven through
// the same call sequence produce byte-identical ciphertexts.
func NewEngine(inputSize, logT int, seed []byte, stddev float64) (*Engine, error) {
	if inputSize <= 0 || inputSize%DefaultN != 0 {
		return nil, fmt.Errorf("secagg: new engine: %w: input_size must be a positive multiple of %d", ErrInvalidArgument, DefaultN)
	}
	if logT <= 0 {
		return nil, fmt.Errorf("secagg: new engine: %w: log_t must be positive", ErrInvalidArgument)
	}
	if stddev < 0 {
		return nil, fmt.Errorf("secagg: new engine: %w: stddev must be non-negative", ErrInvalidArgument)
	}

	qParams, err := modarith.NewParams128(ModulusQ80())
	if err != nil {
		return nil, fmt.Errorf("secagg: new engine: %w", err)
	}
	if logT >= qParams.LogQ()-1 {
		return nil, fmt.Errorf("secagg: new engine: %w: log_t must be below log_q-1", ErrInvalidArgument)
	}

	pParams, err := modarith.NewParams64(ModulusP)
	if err != nil {
		return nil, fmt.Errorf("secagg: new engine: %w", err)
	}

	qTable, err := ring.NewTable(DefaultN, qParams)
	if err != nil {
		return nil, fmt.Errorf("secagg: new engine: %w", err)
	}
	pTable, err := ring.NewTable(DefaultN, pParams)
	if err != nil {
		return nil, fmt.Errorf("secagg: new engine: %w", err)
	}

	if seed == nil {
		seed, err = prng.GenerateHKDFSeed()
		if err != nil {
			return nil, fmt.Errorf("secagg: new engine: %w", err)
		}
	} else if len(seed) != prng.HKDFSeedLength {
		return nil, fmt.Errorf("secagg: new engine: %w: seed must be %d bytes", ErrInvalidArgument, prng.HKDFSeedLength)
	}

	stream, err := prng.NewHKDFStream(seed)
	if err != nil {
		return nil, fmt.Errorf("secagg: new engine: %w", err)
	}

	variance := uint64(math.Round(stddev * stddev))

	e := &Engine{
		inputSize: inputSize,
		logT:      logT,
		variance:  variance,
		qParams:   qParams,
		pParams:   pParams,
		qTable:    qTable,
		pTable:    pTable,
		errParams: rlwe.NewErrorParams(logT, variance, DefaultN),
		seed:      append([]byte(nil), seed...),
		stream:    stream,
	}

	K := inputSize / DefaultN
	u := sampling.NewUniformSampler(qParams)
	e.as = make([]*ring.Poly, K)
	for i := 0; i < K; i++ {
		coeffs, err := u.SampleSlice(stream, DefaultN)
		if err != nil {
			return nil, fmt.Errorf("secagg: new engine: %w", err)
		}
		raw, err := qTable.FromElemSlice(coeffs)
		if err != nil {
			return nil, fmt.Errorf("secagg: new engine: %w", err)
		}
		ntt, err := qTable.NTT(raw)
		if err != nil {
			return nil, fmt.Errorf("secagg: new engine: %w", err)
		}
		e.as[i] = ntt
	}

	return e, nil
}

// Seed returns a copy of the engine's seed.
func (e *Engine) Seed() []byte {
	return append([]byte(nil), e.seed...)
}

// As returns the engine's precomputed per-chunk uniform polynomials (the
// ciphertext c1 components every encryption reuses), in NTT form, letting
// a verifier reconstruct ciphertexts independently of the Engine that
// produced them.
func (e *Engine) As() []*ring.Poly {
	out := make([]*ring.Poly, len(e.as))
	for i, a := range e.as {
		out[i] = a.CopyNew()
	}
	return out
}

// NumChunks reports K, the number of DefaultN-sized chunks inputSize was
// split into.
func (e *Engine) NumChunks() int { return len(e.as) }

// ErrorParams returns the noise-bound report for ciphertexts this engine
// produces.
func (e *Engine) ErrorParams() *rlwe.ErrorParams { return e.errParams }

// SampleKey draws a fresh secret key from the engine's own error
// distribution, consuming from the engine's internal stream.
func (e *Engine) SampleKey() (*rlwe.SecretKey, error) {
	k, err := rlwe.SampleKey(e.qTable, e.variance, e.stream)
	if err != nil {
		return nil, fmt.Errorf("secagg: sample key: %w", err)
	}
	return k, nil
}

// CreateKey reconstructs a secret key over the aggregation modulus q from
// a vector of coefficients mod p — typically the sum of several clients'
// ConvertKey outputs.
func (e *Engine) CreateKey(coeffsModP []uint64) (*rlwe.SecretKey, error) {
	k, err := rlwe.CreateKeyFromConverted(e.qTable, e.pTable, coeffsModP, e.variance)
	if err != nil {
		return nil, fmt.Errorf("secagg: create key: %w", err)
	}
	return k, nil
}

// ConvertKey lifts k's coefficients from Z_q to Z_p for transmission over
// the key-serialization channel.
func (e *Engine) ConvertKey(k *rlwe.SecretKey) ([]uint64, error) {
	out, err := k.ConvertKey(e.pTable)
	if err != nil {
		return nil, fmt.Errorf("secagg: convert key: %w", err)
	}
	return out, nil
}

// SumKeys returns k1+k2 in NTT representation, the operation a server
// combining per-client key shares runs before ConvertKey.
func (e *Engine) SumKeys(k1, k2 *rlwe.SecretKey) (*rlwe.SecretKey, error) {
	sum, err := k1.Add(k2)
	if err != nil {
		return nil, fmt.Errorf("secagg: sum keys: %w", err)
	}
	return sum, nil
}

// Encrypt splits plaintext into NumChunks() chunks of DefaultN
// coefficients each, encrypting chunk i under key and the engine's i-th
// precomputed uniform polynomial. len(plaintext) must equal inputSize.
func (e *Engine) Encrypt(key *rlwe.SecretKey, plaintext []uint64) ([]*rlwe.Ciphertext, error) {
	if len(plaintext) != e.inputSize {
		return nil, fmt.Errorf("secagg: encrypt: %w: plaintext length %d does not match input_size %d", ErrInvalidArgument, len(plaintext), e.inputSize)
	}

	K := e.NumChunks()
	out := make([]*rlwe.Ciphertext, K)
	for i := 0; i < K; i++ {
		chunk := plaintext[i*DefaultN : (i+1)*DefaultN]
		m, err := e.qTable.FromUint64Slice(chunk)
		if err != nil {
			return nil, fmt.Errorf("secagg: encrypt: %w", err)
		}
		ct, err := rlwe.Encrypt(key, e.as[i], m, e.logT, e.errParams, e.stream)
		if err != nil {
			return nil, fmt.Errorf("secagg: encrypt: %w", err)
		}
		out[i] = ct
	}
	return out, nil
}

// Decrypt inverts Encrypt, returning a flat vector of inputSize
// coefficients, each reduced mod t = 2^logT+1.
func (e *Engine) Decrypt(key *rlwe.SecretKey, cts []*rlwe.Ciphertext) ([]uint64, error) {
	K := e.NumChunks()
	if len(cts) != K {
		return nil, fmt.Errorf("secagg: decrypt: %w: expected %d ciphertexts, got %d", ErrInvalidArgument, K, len(cts))
	}

	out := make([]uint64, 0, e.inputSize)
	for i, ct := range cts {
		chunk, err := rlwe.Decrypt(key, ct, e.logT)
		if err != nil {
			return nil, fmt.Errorf("secagg: decrypt: chunk %d: %w", i, err)
		}
		out = append(out, chunk...)
	}
	return out, nil
}

// Aggregate adds next into sum chunk-by-chunk (first ciphertext component
// only, per rlwe.Ciphertext.AddInPlaceFst), returning a new slice of
// ciphertexts rather than mutating either input. Both slices must hold
// NumChunks() ciphertexts.
func (e *Engine) Aggregate(sum, next []*rlwe.Ciphertext) ([]*rlwe.Ciphertext, error) {
	K := e.NumChunks()
	if len(sum) != K || len(next) != K {
		return nil, fmt.Errorf("secagg: aggregate: %w: expected %d ciphertexts per side", ErrInvalidArgument, K)
	}

	out := make([]*rlwe.Ciphertext, K)
	for i := 0; i < K; i++ {
		acc := &rlwe.Ciphertext{
			Table:       sum[i].Table,
			PowerOfS:    sum[i].PowerOfS,
			ErrorBound:  sum[i].ErrorBound,
			ErrorParams: sum[i].ErrorParams,
		}
		acc.C[0] = sum[i].C[0].CopyNew()
		acc.C[1] = sum[i].C[1].CopyNew()
		if err := acc.AddInPlaceFst(next[i]); err != nil {
			return nil, fmt.Errorf("secagg: aggregate: chunk %d: %w", i, err)
		}
		out[i] = acc
	}
	return out, nil
}
