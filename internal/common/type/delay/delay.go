// Released under an MIT license. See LICENSE.

// Package delay provides ferret's memoized value. The producer runs the
// first time the value is read and never again.
package delay

import (
	"github.com/michaelmacinnis/ferret/internal/common/interface/callable"
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/interface/deref"
	"github.com/michaelmacinnis/ferret/internal/memory"
	"github.com/michaelmacinnis/ferret/internal/system/lock"
)

const name = "delay"

// T (delay) holds a producer until its value is needed.
type T struct {
	cell.Header

	fn   cell.Ref
	lock lock.T
	val  cell.Ref
}

type delay = T

// New creates a delay that calls fn, with no arguments, when first read.
func New(fn cell.Ref) cell.Ref {
	return cell.New(delay{fn: fn.Copy(), lock: memory.Active().NewLock()})
}

// Deref returns the value of d, running the producer if it has not run.
// The producer is released once it has run.
func (d *delay) Deref() cell.Ref {
	d.lock.Lock()
	defer d.lock.Unlock()

	if !d.fn.Nil() {
		d.val = callable.Run(d.fn)
		d.fn.Release()
	}

	return d.val.Copy()
}

// Drop releases the producer or value held by d.
func (d *delay) Drop() {
	cell.Release(&d.fn, &d.val)
}

// Equal returns true if c is the same delay.
func (d *delay) Equal(c cell.Ref) bool {
	return c.Get() == cell.I(d)
}

// IsRealized returns true if the producer has run.
func (d *delay) IsRealized() bool {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.fn.Nil()
}

// Name returns the name for a delay type.
func (d *delay) Name() string {
	return name
}

// Type returns the delayed tag.
func (d *delay) Type() cell.Tag {
	return cell.Delayed
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
	var t delay

	// The delay type is a cell.
	_ = cell.I(&t)

	// The delay type can be dereferenced.
	_ = deref.I(&t)

	// The delay type owns references.
	_ = cell.Owner(&t)
}
