package gen

import "iter"

// Sustainer is a stateful producer that yields the same value on every call
// to [Sustainer.Next], up to an optional bound.
//
// The zero Sustainer is bounded at zero and immediately exhausted; create
// instances with [Sustain] or [SustainN]. Each instance carries its own
// counter; separate Sustainers never share state. Not safe for concurrent
// use without external synchronization.
type Sustainer[T any] struct {
	value     T
	limit     int
	unbounded bool
	produced  int
}

// Sustain returns an unbounded producer of v. It never reports exhaustion;
// the caller is responsible for bounding consumption.
func Sustain[T any](v T) *Sustainer[T] {
	return &Sustainer[T]{value: v, unbounded: true}
}

// SustainN returns a producer that yields v exactly n times and then
// reports exhaustion forever after. n <= 0 yields a producer that is
// exhausted from the first call.
func SustainN[T any](v T, n int) *Sustainer[T] {
	if n < 0 {
		n = 0
	}
	return &Sustainer[T]{value: v, limit: n}
}

// Next produces the next value. It returns the sustained value and true
// while the producer has values left, and the zero value and false once the
// bound has been reached. After the first false, every subsequent call
// returns false: a Sustainer is not restartable.
func (s *Sustainer[T]) Next() (T, bool) {
	if !s.unbounded && s.produced >= s.limit {
		var zero T
		return zero, false
	}
	s.produced++
	return s.value, true
}

// Seq adapts the producer to Go's range-over-func iteration protocol.
//
// The returned sequence pulls from the same counter as [Sustainer.Next]:
// values consumed through one are gone from the other, and ranging a
// bounded Sustainer a second time yields only whatever the first pass left
// behind. Ranging an unbounded Sustainer without a break does not
// terminate.
func (s *Sustainer[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
