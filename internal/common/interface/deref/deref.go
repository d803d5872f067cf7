// Released under an MIT license. See LICENSE.

// Package deref defines the interface for ferret's readable cells.
package deref

import (
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
)

// I (deref) is anything that holds a value that can be read.
type I interface {
	cell.I

	Deref() cell.Ref
}

type deref = I

// Is returns true if c can be dereferenced.
func Is(c cell.Ref) bool {
	_, ok := c.Get().(deref)

	return ok
}

// Value returns the value held by c. It panics if c cannot be dereferenced.
func Value(c cell.Ref) cell.Ref {
	if d, ok := c.Get().(deref); ok {
		return d.Deref()
	}

	if c.Nil() {
		panic("nil cannot be dereferenced")
	}

	panic(c.Get().Name() + " cannot be dereferenced")
}
