// Package dict provides standalone generic helpers for unordered key→value
// mappings, operating on plain map[K]V values.
//
// # Lookup
//
//	v, ok := dict.Get(m, "port")
//	port  := dict.GetOr(m, "port", 8080)
//
// [GetOr] falls back only when the key is missing; a stored zero value is
// returned as-is. Presence and zero-ness are distinct.
//
// # Traversal and folding
//
//	ks := dict.Keys(m)
//	total := dict.Fold(m, func(acc int, _ string, v int) int { return acc + v }, 0)
//
// Map iteration order is unspecified in Go, and every helper here inherits
// that: Keys, Vals, Each and Fold visit entries in no particular order.
// For a deterministic Fold result the combining function must not depend on
// visit order (sums, unions, maxima are fine; string concatenation is not).
// Fold always takes an explicit initial accumulator — with no defined
// "first" entry there is no seed-from-first mode.
//
// # Portability
//
// Equivalent to the keys/vals/get/reduce-kv helpers of most functional
// utility belts; only the unspecified-order caveat is Go-specific.
package dict
