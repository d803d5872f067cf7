// Released under an MIT license. See LICENSE.

// Package truth defines the interface for ferret types that have a truth value.
package truth

import (
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for c. Nil is false. Objects without a
// truth value of their own are true.
func Value(c cell.Ref) bool {
	if b, ok := c.Get().(I); ok {
		return b.Bool()
	}

	return c.Bool()
}
