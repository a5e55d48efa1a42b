package gen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hkarlsen/go-fn-utils/gen"
)

func TestSustainN(t *testing.T) {
	s := gen.SustainN(5, 3)

	for i := 0; i < 3; i++ {
		v, ok := s.Next()
		require.True(t, ok, "call %d should produce", i+1)
		require.Equal(t, 5, v)
	}

	v, ok := s.Next()
	require.False(t, ok, "fourth call should be exhausted")
	require.Zero(t, v)
}

func TestSustainNStaysExhausted(t *testing.T) {
	s := gen.SustainN("x", 1)

	_, ok := s.Next()
	require.True(t, ok)

	for i := 0; i < 5; i++ {
		_, ok := s.Next()
		require.False(t, ok, "once exhausted, always exhausted")
	}
}

func TestSustainNZero(t *testing.T) {
	s := gen.SustainN(9, 0)
	_, ok := s.Next()
	require.False(t, ok, "a zero bound is exhausted from the first call")
}

func TestSustainNNegative(t *testing.T) {
	s := gen.SustainN(9, -3)
	_, ok := s.Next()
	require.False(t, ok)
}

func TestSustainUnbounded(t *testing.T) {
	s := gen.Sustain(7)
	for i := 0; i < 1000; i++ {
		v, ok := s.Next()
		require.True(t, ok)
		require.Equal(t, 7, v)
	}
}

func TestSustainersAreIndependent(t *testing.T) {
	a := gen.SustainN(1, 1)
	b := gen.SustainN(1, 1)

	_, ok := a.Next()
	require.True(t, ok)
	_, ok = a.Next()
	require.False(t, ok)

	// Draining a must not touch b.
	_, ok = b.Next()
	require.True(t, ok)
}

func TestZeroSustainer(t *testing.T) {
	var s gen.Sustainer[int]
	_, ok := s.Next()
	require.False(t, ok, "the zero Sustainer is exhausted")
}

func TestSeqBounded(t *testing.T) {
	var got []string
	for v := range gen.SustainN("tick", 3).Seq() {
		got = append(got, v)
	}
	require.Equal(t, []string{"tick", "tick", "tick"}, got)
}

func TestSeqUnboundedWithBreak(t *testing.T) {
	count := 0
	for range gen.Sustain(1).Seq() {
		count++
		if count == 10 {
			break
		}
	}
	require.Equal(t, 10, count)
}

func TestSeqSharesCounterWithNext(t *testing.T) {
	s := gen.SustainN(2, 3)

	_, ok := s.Next()
	require.True(t, ok)

	// Two values remain for the range.
	count := 0
	for range s.Seq() {
		count++
	}
	require.Equal(t, 2, count)

	_, ok = s.Next()
	require.False(t, ok)
}

func TestSeqEarlyBreakLeavesRemainder(t *testing.T) {
	s := gen.SustainN(8, 5)

	for range s.Seq() {
		break // consumes exactly one value
	}

	count := 0
	for range s.Seq() {
		count++
	}
	require.Equal(t, 4, count)
}
