// Released under an MIT license. See LICENSE.

// Package list provides common sequence operations. A list is not a true
// type. Lists are more of a type by convention. Every function here accepts
// any sequence, nil, or the empty sequence.
package list

import (
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/interface/seq"
	"github.com/michaelmacinnis/ferret/internal/common/type/pair"
)

// Cons returns a sequence with x in front of c.
func Cons(x, c cell.Ref) cell.Ref {
	return pair.Cons(x, c)
}

// Count returns the number of elements in c.
// The sequence must be finite.
func Count(c cell.Ref) int64 {
	var n int64

	Each(c, func(int64, cell.Ref) bool {
		n++

		return true
	})

	return n
}

// Each calls f with the index and value of each element in c until f
// returns false. The value is borrowed for the duration of the call.
func Each(c cell.Ref, f func(i int64, v cell.Ref) bool) {
	c = c.Copy()
	defer c.Release()

	for i := int64(0); !pair.End(c); i++ {
		v := pair.First(c)
		ok := f(i, v)
		v.Release()

		if !ok {
			return
		}

		next := pair.Rest(c)
		c.Release()
		c = next
	}
}

// First returns the first element of c.
func First(c cell.Ref) cell.Ref {
	return pair.First(c)
}

// FromSlice creates a new list from the elements in s.
func FromSlice(s []cell.Ref) cell.Ref {
	return New(s...)
}

// IsSeq returns true if c supports the sequence operations.
func IsSeq(c cell.Ref) bool {
	return seq.Is(c)
}

// New creates a new list composed of all of the elements in elements.
// With no elements New returns the empty sequence.
func New(elements ...cell.Ref) cell.Ref {
	l := pair.Null

	for i := len(elements) - 1; i >= 0; i-- {
		next := pair.Cons(elements[i], l)
		l.Release()
		l = next
	}

	return l
}

// Nth returns element index of c or nil if c has fewer elements.
func Nth(c cell.Ref, index int64) cell.Ref {
	r := NthRest(c, index)
	defer r.Release()

	return pair.First(r)
}

// NthRest returns the sequence that starts at element index of c.
// If c has fewer elements the result is nil or the empty sequence.
func NthRest(c cell.Ref, index int64) cell.Ref {
	c = c.Copy()

	for ; index > 0 && !c.Nil(); index-- {
		next := pair.Rest(c)
		c.Release()
		c = next
	}

	return c
}

// Rest returns everything after the first element of c.
func Rest(c cell.Ref) cell.Ref {
	return pair.Rest(c)
}

// Reverse returns a new list with the elements of c in reverse order.
func Reverse(c cell.Ref) cell.Ref {
	r := pair.Null

	Each(c, func(_ int64, v cell.Ref) bool {
		next := pair.Cons(v, r)
		r.Release()
		r = next

		return true
	})

	return r
}

// Slice returns the elements of c. The caller owns each element.
func Slice(c cell.Ref) []cell.Ref {
	var s []cell.Ref

	Each(c, func(_ int64, v cell.Ref) bool {
		s = append(s, v.Copy())

		return true
	})

	return s
}
