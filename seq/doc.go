// Package seq provides standalone generic helpers for ordered sequences,
// operating on plain []T values — no wrapper type required.
//
// # Traversal and transformation
//
//	evens := seq.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	names := seq.Map(users, func(u User, _ int) string { return u.Name })
//	seq.Any(ids, fn.EqualTo(42))
//
// Callbacks receive (item, index). Every transform returns a freshly
// allocated slice; the input is never mutated.
//
// # Reduction
//
// Two fold entry points with distinct seeding rules:
//
//	sum := seq.Fold(ns, func(acc, n, _ int) int { return acc + n }, 0)
//	max, ok := seq.Reduce(ns, func(acc, n, _ int) int { return max(acc, n) })
//
// [Fold] takes an explicit initial accumulator and visits every element.
// [Reduce] seeds the accumulator from the first element and visits the rest,
// which suits associative operations that have no natural identity value;
// it reports false for an empty input. See reduce.go for the exact edge
// cases.
//
// # Grouping
//
//	byDept := seq.GroupBy(employees, func(e Employee) string { return e.Department })
//	byID   := seq.MapBy(users, func(u User) int { return u.ID })
//
// Grouping results are plain Go maps; their iteration order is unspecified,
// but the element order inside each group matches the input order.
//
// # Portability
//
// All helpers follow the map/filter/reduce pattern and translate directly
// to other languages without Go-specific idioms.
package seq
