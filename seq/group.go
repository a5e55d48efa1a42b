package seq

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & mapping builders
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy partitions items by the comparable key extracted by fn and returns
// a map from each observed key to the elements that produced it, in their
// original relative order.
//
// Only keys that actually occur appear in the result; no bucket is
// pre-populated. An empty input yields an empty (non-nil) map.
//
//	byParity := seq.GroupBy([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
//	// → map[false:[1 3] true:[2 4]]
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// MapBy builds a map keyed by the value extracted by fn, with the element as
// the map value. When multiple elements share a key, the last one in
// traversal order wins.
//
//	byID := seq.MapBy(users, func(u User) int { return u.ID })
func MapBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}

// MapTo builds a map keyed by the elements themselves, with fn's result as
// the map value. Duplicate elements overwrite, last wins.
//
//	lengths := seq.MapTo([]string{"a", "bb"}, func(s string) int { return len(s) })
//	// → map[a:1 bb:2]
func MapTo[K comparable, V any](items []K, fn func(K) V) map[K]V {
	out := make(map[K]V, len(items))
	for _, item := range items {
		out[item] = fn(item)
	}
	return out
}

// Zip combines two slices element-by-element into Pairs.
// Stops at the shorter of the two inputs.
//
//	pairs := seq.Zip([]string{"a", "b"}, []int{1, 2})
//	// → [(a,1) (b,2)]
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}
