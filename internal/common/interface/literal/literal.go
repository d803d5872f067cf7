// Released under an MIT license. See LICENSE.

// Package literal defines the interface for ferret types that can be
// expressed as literals.
package literal

import (
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal representation for c. Objects without a
// literal representation render as they print.
func String(c cell.Ref) string {
	if l, ok := c.Get().(I); ok {
		return l.Literal()
	}

	return c.String()
}
