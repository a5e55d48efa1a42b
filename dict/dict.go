package dict

// ─────────────────────────────────────────────────────────────────────────────
// Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under key together with a presence flag.
// Returns the zero value and false when the key is absent.
func Get[K comparable, V any](m map[K]V, key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

// GetOr returns the value stored under key, or fallback when the key is
// absent. A stored zero value is present and is returned as-is.
func GetOr[K comparable, V any](m map[K]V, key K, fallback V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// ContainsKey reports whether m has an entry under key.
func ContainsKey[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// ContainsValue reports whether any entry of m holds value
// (requires comparable V).
func ContainsValue[K, V comparable](m map[K]V, value V) bool {
	for _, v := range m {
		if v == value {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of m as a slice, in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Vals returns the values of m as a slice, in unspecified order.
func Vals[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// Each calls fn(key, value) for every entry of m, in unspecified order.
func Each[K comparable, V any](m map[K]V, fn func(K, V)) {
	for k, v := range m {
		fn(k, v)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

// Fold reduces the entries of m to a single value of type A via
// acc = fn(acc, key, value), starting from initial.
//
// Entries are visited in unspecified order, so fn must be insensitive to
// visit order for the result to be deterministic; that is the caller's
// responsibility. An empty map returns initial unchanged and never
// invokes fn. Unlike [seq.Reduce] there is no seed-from-first mode: an
// unordered mapping has no first entry.
//
//	total := dict.Fold(prices, func(acc float64, _ string, p float64) float64 {
//	    return acc + p
//	}, 0)
func Fold[K comparable, V, A any](m map[K]V, fn func(A, K, V) A, initial A) A {
	result := initial
	for k, v := range m {
		result = fn(result, k, v)
	}
	return result
}

// Merge returns a new map holding the entries of every input map.
// Later maps win on key collisions. Inputs are never mutated.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	size := 0
	for _, m := range ms {
		size += len(m)
	}
	out := make(map[K]V, size)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
