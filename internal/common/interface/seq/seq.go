// Released under an MIT license. See LICENSE.

// Package seq defines the interface for ferret's sequences.
package seq

import (
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
)

// I (seq) is anything that can be traversed front to back.
//
// Arguments are borrowed. Every returned reference is owned by the caller.
type I interface {
	cell.I

	// Cons returns a new sequence with x in front. The receiver is unchanged.
	Cons(x cell.Ref) cell.Ref

	// First returns the first element or nil.
	First() cell.Ref

	// Rest returns the remaining elements. Reaching the end yields the
	// empty sequence.
	Rest() cell.Ref
}

type seq = I

// Is returns true if c is a sequence.
func Is(c cell.Ref) bool {
	_, ok := c.Get().(seq)

	return ok
}

// To returns a sequence if c is a sequence; Otherwise it panics.
func To(c cell.Ref) I {
	if t, ok := c.Get().(seq); ok {
		return t
	}

	panic(name(c) + " is not a sequence")
}

func name(c cell.Ref) string {
	if c.Nil() {
		return "nil"
	}

	return c.Get().Name()
}
