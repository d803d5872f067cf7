// Released under an MIT license. See LICENSE.

// Package callable defines the interface for ferret's functions and the
// entry point used to call them.
package callable

import (
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/type/list"
)

// I (callable) is anything that can be invoked with a list of arguments.
// The argument list is borrowed and the result is owned by the caller.
type I interface {
	cell.I

	Invoke(args cell.Ref) cell.Ref
}

type callable = I

// Is returns true if c is callable.
func Is(c cell.Ref) bool {
	_, ok := c.Get().(callable)

	return ok
}

// To returns a callable if c is callable; Otherwise it panics.
func To(c cell.Ref) I {
	if t, ok := c.Get().(callable); ok {
		return t
	}

	if c.Nil() {
		panic("nil is not callable")
	}

	panic(c.Get().Name() + " is not callable")
}

// Run invokes f with args and returns the result. With no arguments f
// is passed nil rather than an empty list.
func Run(f cell.Ref, args ...cell.Ref) cell.Ref {
	fn := To(f)

	if len(args) == 0 {
		return fn.Invoke(cell.Nil)
	}

	l := list.New(args...)
	defer l.Release()

	return fn.Invoke(l)
}

// Apply invokes f with an existing argument list.
func Apply(f, args cell.Ref) cell.Ref {
	return To(f).Invoke(args)
}
