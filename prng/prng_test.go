package prng

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHKDFStreamDeterministic(t *testing.T) {
	seed, err := GenerateHKDFSeed()
	require.NoError(t, err)

	s1, err := NewHKDFStream(seed)
	require.NoError(t, err)
	s2, err := NewHKDFStream(seed)
	require.NoError(t, err)

	a := make([]byte, 1024)
	b := make([]byte, 1024)
	_, err = s1.Read(a)
	require.NoError(t, err)
	_, err = s2.Read(b)
	require.NoError(t, err)
	require.True(t, bytes.Equal(a, b))
}

func TestHKDFStreamRekeysAcrossBoundary(t *testing.T) {
	seed := make([]byte, HKDFSeedLength)
	s, err := NewHKDFStream(seed)
	require.NoError(t, err)

	// Consume exactly one buffer's worth, forcing a re-salt on the next byte.
	buf := make([]byte, bufferSize)
	_, err = s.Read(buf)
	require.NoError(t, err)

	next := make([]byte, 64)
	_, err = s.Read(next)
	require.NoError(t, err)
	require.NotEqual(t, buf[:64], next)
}

func TestHKDFStreamSeedSize(t *testing.T) {
	_, err := NewHKDFStream(make([]byte, 10))
	require.ErrorIs(t, err, ErrSeedSize)
}

func TestChaChaStreamDeterministic(t *testing.T) {
	key, err := GenerateChaChaKey()
	require.NoError(t, err)

	s1, err := NewChaChaStream(key)
	require.NoError(t, err)
	s2, err := NewChaChaStream(key)
	require.NoError(t, err)

	a := make([]byte, 1024)
	b := make([]byte, 1024)
	_, err = s1.Read(a)
	require.NoError(t, err)
	_, err = s2.Read(b)
	require.NoError(t, err)
	require.True(t, bytes.Equal(a, b))
}

func TestChaChaStreamSeedSize(t *testing.T) {
	_, err := NewChaChaStream(make([]byte, 10))
	require.ErrorIs(t, err, ErrSeedSize)
}

func TestRand8Rand64(t *testing.T) {
	seed := make([]byte, HKDFSeedLength)
	s, err := NewHKDFStream(seed)
	require.NoError(t, err)

	if _, err := s.Rand8(); err != nil {
		t.Fatalf("Rand8: %v", err)
	}
	if _, err := s.Rand64(); err != nil {
		t.Fatalf("Rand64: %v", err)
	}
}
