// Package fn provides small function combinators — identity, constant
// functions, predicate complement, curried equality — and numeric helpers
// used to build callbacks for the seq and dict packages inline.
//
// # Combinators
//
//	odd  := func(n int) bool { return n%2 != 0 }
//	even := fn.Complement(odd)
//
//	isZero := fn.EqualTo(0)
//	seq.Any([]int{3, 0, 7}, isZero) // → true
//
// # Curried vs eager equality
//
// Equality is exposed as two distinct entry points rather than one function
// that inspects its argument count:
//
//	fn.Equals(a, b)          // eager: compare now
//	fn.EqualTo(a)            // factory: returns func(b T) bool
//
// Pick the form you need statically; there is no runtime arity dispatch.
//
// # Presence checks
//
// [Some] and [None] test a pointer for nil-ness — Go's nullable
// representation of "maybe a value". They deliberately distinguish
// "absent" from "present but zero": a pointer to a zero value is Some.
//
// # Portability
//
// These map directly to the identity/constantly/complement trio found in
// most functional utility belts (Clojure core, Lodash, Python functools).
package fn
