package fn

// Number is the constraint satisfied by the built-in integer and float
// types (and types derived from them). It is the element constraint for
// the arithmetic helpers [Inc], [Dec], [Add] and [Sub].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ─────────────────────────────────────────────────────────────────────────────
// Combinators
// ─────────────────────────────────────────────────────────────────────────────

// Identity returns its argument unchanged.
//
// Useful as a placeholder transform:
//
//	seq.Keep(items, func(s string) (string, bool) { return s, s != "" })
//	seq.MapTo(keys, fn.Identity) // key → itself
func Identity[T any](v T) T { return v }

// Constantly returns a zero-argument function that always returns v.
//
//	always5 := fn.Constantly(5)
//	always5() // → 5, every time
func Constantly[T any](v T) func() T {
	return func() T { return v }
}

// Complement returns a predicate that reports the opposite of pred.
//
//	odd := fn.Complement(even)
func Complement[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}

// Equals reports whether a == b. It is the eager counterpart of [EqualTo].
func Equals[T comparable](a, b T) bool { return a == b }

// EqualTo returns a single-argument predicate that reports whether its
// argument equals v. It is the curried counterpart of [Equals].
//
//	isAdmin := fn.EqualTo("admin")
//	seq.Any(roles, isAdmin)
func EqualTo[T comparable](v T) func(T) bool {
	return func(other T) bool { return other == v }
}

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic helpers
// ─────────────────────────────────────────────────────────────────────────────

// Inc returns n + 1.
func Inc[N Number](n N) N { return n + 1 }

// Dec returns n - 1.
func Dec[N Number](n N) N { return n - 1 }

// Add returns a + b.
func Add[N Number](a, b N) N { return a + b }

// Sub returns a - b.
func Sub[N Number](a, b N) N { return a - b }

// ─────────────────────────────────────────────────────────────────────────────
// Presence checks
// ─────────────────────────────────────────────────────────────────────────────

// Some reports whether p points at a value. A pointer to a zero value is
// still Some: presence and truthiness are distinct.
func Some[T any](p *T) bool { return p != nil }

// None reports whether p is nil. It is the complement of [Some].
func None[T any](p *T) bool { return p == nil }
