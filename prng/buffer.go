package prng

import "encoding/binary"

// buffered holds the common re-keying/refill bookkeeping shared by the
// HKDF and ChaCha20 stream variants: a fixed-size buffer consumed byte by
// byte, refilled in one shot by a variant-specific closure once exhausted.
type buffered struct {
	buf    []byte
	pos    int
	refill func(buf []byte) error
}

func newBuffered(refill func([]byte) error) *buffered {
	return &buffered{buf: make([]byte, bufferSize), pos: bufferSize, refill: refill}
}

func (b *buffered) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if b.pos == len(b.buf) {
			if err := b.refill(b.buf); err != nil {
				return n, err
			}
			b.pos = 0
		}
		c := copy(p[n:], b.buf[b.pos:])
		b.pos += c
		n += c
	}
	return n, nil
}

func (b *buffered) Rand8() (uint8, error) {
	var x [1]byte
	if _, err := b.Read(x[:]); err != nil {
		return 0, err
	}
	return x[0], nil
}

func (b *buffered) Rand64() (uint64, error) {
	var x [8]byte
	if _, err := b.Read(x[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(x[:]), nil
}
