// Package sampling draws polynomial coefficients from the distributions
// the secure-aggregation engine needs: uniform (for the public per-chunk
// polynomials a), centered binomial (for keys and ciphertext
// noise, the NewHope-style replacement for a discrete Gaussian), and
// discrete Gaussian (kept alongside it, selectable per call like the
// original RLWE sampler offers both).
//
// Every sampler here draws from a prng.Stream rather than crypto/rand
// directly, keeping the distribution logic agnostic to which stream
// variant (HKDF- or ChaCha20-backed) feeds it.
package sampling

import (
	"encoding/binary"

	"github.com/rtaiello/rlwe-sa/modarith"
	"github.com/rtaiello/rlwe-sa/prng"
)

// UniformSampler draws values uniformly from [0, q) by rejection sampling
// over ceil(logQ/8) raw bytes: draw the bytes, mask the top one down to
// the modulus's bit-length, reject anything that falls in [q, 2^logQ).
type UniformSampler struct {
	params   modarith.Params
	byteLen  int
	topMask  byte
}

// NewUniformSampler builds a sampler for the modulus behind params.
func NewUniformSampler(params modarith.Params) *UniformSampler {
	logQ := params.LogQ()
	byteLen := (logQ + 7) / 8
	topBits := logQ % 8
	var topMask byte = 0xff
	if topBits != 0 {
		topMask = byte(1<<topBits - 1)
	}
	return &UniformSampler{params: params, byteLen: byteLen, topMask: topMask}
}

// Sample draws a single uniform value in [0, q) in plain (non-Montgomery)
// form.
func (u *UniformSampler) Sample(stream prng.Stream) (modarith.Elem, error) {
	qBig := modarith.ToBig(u.params.Modulus())
	buf := make([]byte, u.byteLen)

	for {
		if _, err := stream.Read(buf); err != nil {
			return modarith.Elem{}, err
		}
		buf[0] &= u.topMask

		v := beBytesToElem(buf)
		if modarith.ToBig(v).Cmp(qBig) < 0 {
			return v, nil
		}
	}
}

// SampleSlice draws n uniform values in [0, q), in plain form.
func (u *UniformSampler) SampleSlice(stream prng.Stream, n int) ([]modarith.Elem, error) {
	out := make([]modarith.Elem, n)
	for i := range out {
		v, err := u.Sample(stream)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// beBytesToElem packs up to 16 big-endian bytes into an Elem.
func beBytesToElem(b []byte) modarith.Elem {
	var padded [16]byte
	copy(padded[16-len(b):], b)
	hi := binary.BigEndian.Uint64(padded[:8])
	lo := binary.BigEndian.Uint64(padded[8:])
	return modarith.Elem{Lo: lo, Hi: hi}
}
