package seq

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		var found T
		matched := false
		for _, item := range items {
			if fns[0](item) {
				found = item
				matched = true
			}
		}
		return found, matched
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Contains reports whether items contains value (requires comparable T).
func Contains[T comparable](items []T, value T) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// Any reports whether at least one element satisfies pred.
// Returns false for an empty sequence.
func Any[T any](items []T, pred func(T) bool) bool {
	for _, item := range items {
		if pred(item) {
			return true
		}
	}
	return false
}

// Every reports whether all elements satisfy pred.
// Returns true for an empty sequence (vacuous truth).
func Every[T any](items []T, pred func(T) bool) bool {
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal & transformation
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element, in order.
func Each[T any](items []T, fn func(T, int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns the elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Remove returns the elements for which fn returns false.
// It is the complement of [Filter].
func Remove[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Keep returns the elements for which fn reports a present result.
//
// Unlike [Filter], the decision is presence rather than truthiness: an
// element is retained whenever fn's second return is true, whatever the
// first return holds (including a zero or false value).
//
//	// keep strings that parse as integers, however small:
//	nums := seq.Keep(words, func(s string) (int, bool) {
//	    n, err := strconv.Atoi(s)
//	    return n, err == nil
//	})
func Keep[T, U any](items []T, fn func(T) (U, bool)) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := fn(item); ok {
			out = append(out, item)
		}
	}
	return out
}
