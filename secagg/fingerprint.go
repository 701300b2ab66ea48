package secagg

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Fingerprint hashes a coefficient vector (a seed, a converted key share,
// or any other diagnostic payload) into a short, non-cryptographically-
// load-bearing digest for log lines — it plays no role in correctness and
// must never be compared for anything security-relevant.
func Fingerprint(coeffs []uint64) [32]byte {
	h := blake3.New()
	var buf [8]byte
	for _, c := range coeffs {
		binary.LittleEndian.PutUint64(buf[:], c)
		h.Write(buf[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
