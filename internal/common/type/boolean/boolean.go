// Released under an MIT license. See LICENSE.

// Package boolean provides ferret's boolean value type.
package boolean

import (
	"github.com/michaelmacinnis/ferret/internal/common"
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/interface/literal"
	"github.com/michaelmacinnis/ferret/internal/common/interface/truth"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T struct {
	cell.Header

	v bool
}

type boolean = T

//nolint:gochecknoglobals
var (
	False = cell.Immortal(&boolean{v: false})
	True  = cell.Immortal(&boolean{v: true})
)

// Bool returns the canonical boolean for the bool b.
func Bool(b bool) cell.Ref {
	if b {
		return True
	}

	return False
}

// New returns the boolean named by s.
func New(s string) cell.Ref {
	switch s {
	case "true":
		return True
	case "false":
		return False
	}

	panic(s + " is not 'true' or 'false'")
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return b.v
}

// Equal returns true if c is a boolean with a matching value.
func (b *boolean) Equal(c cell.Ref) bool {
	return Is(c) && b.v == To(c).v
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	return b.String()
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if b.v {
		return "true"
	}

	return "false"
}

// Type returns the boolean tag.
func (b *boolean) Type() cell.Tag {
	return cell.Boolean
}

// Is returns true if c is a *T.
func Is(c cell.Ref) bool {
	_, ok := c.Get().(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.Ref) *T {
	if t, ok := c.Get().(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type is a stringer.
	_ = common.Stringer(&t)

	// The boolean type has a truth value.
	_ = truth.I(&t)
}
