package seq

// ─────────────────────────────────────────────────────────────────────────────
// Reduction
//
// Two entry points with distinct seeding rules, chosen statically by the
// caller rather than by inspecting arguments at run time:
//
//   - Fold:   explicit initial accumulator, fn runs len(items) times.
//   - Reduce: accumulator seeded from the first element, fn runs
//             len(items)-1 times; empty input reports absence.
// ─────────────────────────────────────────────────────────────────────────────

// Fold reduces items to a single value of type A via a strict left-to-right
// fold: acc = fn(acc, item, index), starting from initial.
//
// An empty input returns initial unchanged and never invokes fn.
//
//	sum := seq.Fold([]int{1, 2, 3}, func(acc, n, _ int) int { return acc + n }, 0)
func Fold[T, A any](items []T, fn func(A, T, int) A, initial A) A {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// Reduce folds items left-to-right without an explicit seed: the accumulator
// starts as items[0] and fn consumes the remaining elements, so fn is applied
// len(items)-1 times. This suits binary associative operations (max, gcd,
// string joining) that have no redundant identity element.
//
// Returns the zero value and false for an empty input. A single-element
// input returns that element without invoking fn. For a non-empty input,
//
//	seq.Reduce(items, fn)
//
// is equivalent to
//
//	seq.Fold(items[1:], fn, items[0])
//
// except that fn still sees the element's index in the original sequence.
func Reduce[T any](items []T, fn func(acc, item T, index int) T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	result := items[0]
	for i, item := range items[1:] {
		result = fn(result, item, i+1)
	}
	return result, true
}
