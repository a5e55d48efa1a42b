// Package gen provides Sustain, a lazy producer that repeats a single value
// on demand, optionally a bounded number of times.
//
// # Pull style
//
//	s := gen.SustainN(5, 3)
//	for v, ok := s.Next(); ok; v, ok = s.Next() {
//	    fmt.Println(v) // 5, three times
//	}
//
// # Range style
//
// A Sustainer plugs into Go's range-over-func protocol via [Sustainer.Seq]:
//
//	for v := range gen.SustainN("tick", 3).Seq() {
//	    fmt.Println(v)
//	}
//
// [Sustain] (no bound) never exhausts; pair it with an explicit break or a
// counted loop, or it will run forever.
//
// A Sustainer is single-use: once it reports exhaustion it stays exhausted.
// It mutates an internal counter on every produced value and is therefore
// not safe for concurrent use without external locking.
package gen
