// Released under an MIT license. See LICENSE.

// Package pointer provides ferret's opaque pointer type.
package pointer

import (
	"fmt"
	"unsafe"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
)

const name = "pointer"

// T (pointer) wraps an address owned by something outside ferret.
type T struct {
	cell.Header

	payload unsafe.Pointer
}

type pointer = T

// New creates a pointer to p.
func New(p unsafe.Pointer) cell.Ref {
	return cell.New(pointer{payload: p})
}

// Equal returns true if c is a pointer to the same address.
func (p *pointer) Equal(c cell.Ref) bool {
	return Is(c) && p.payload == To(c).payload
}

// Name returns the name for a pointer type.
func (p *pointer) Name() string {
	return name
}

// Payload returns the address p holds.
func (p *pointer) Payload() unsafe.Pointer {
	return p.payload
}

// String returns the text representation of the pointer p.
func (p *pointer) String() string {
	return fmt.Sprintf("%s<%p>", name, p.payload)
}

// Type returns the pointer tag.
func (p *pointer) Type() cell.Tag {
	return cell.Pointer
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
	var t pointer

	// The pointer type is a cell.
	_ = cell.I(&t)
}
