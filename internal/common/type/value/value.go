// Released under an MIT license. See LICENSE.

// Package value provides a ferret cell that boxes any Go value.
package value

import (
	"fmt"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
)

const name = "value"

// T (value) boxes a Go value. Values are only equal to themselves.
type T struct {
	cell.Header

	v any
}

type value = T

// New boxes v.
func New(v any) cell.Ref {
	return cell.New(value{v: v})
}

// Equal returns true if c is the same value.
func (b *value) Equal(c cell.Ref) bool {
	return c.Get() == cell.I(b)
}

// Name returns the name for a value type.
func (b *value) Name() string {
	return name
}

// String returns the text representation of the value b.
func (b *value) String() string {
	return fmt.Sprintf("%s<%p>", name, b)
}

// Type returns the value tag.
func (b *value) Type() cell.Tag {
	return cell.Value
}

// Value returns the boxed Go value.
func (b *value) Value() any {
	return b.v
}

// Get returns the Go value boxed in c. It panics if c does not box a V.
func Get[V any](c cell.Ref) V {
	v, ok := To(c).v.(V)
	if !ok {
		var zero V

		panic(fmt.Sprintf("%s does not hold a %T", name, zero))
	}

	return v
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
	var t value

	// The value type is a cell.
	_ = cell.I(&t)
}
