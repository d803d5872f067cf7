// Released under an MIT license. See LICENSE.

// Package atom provides ferret's guarded cell.
package atom

import (
	"fmt"

	"github.com/michaelmacinnis/ferret/internal/common/interface/callable"
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/interface/deref"
	"github.com/michaelmacinnis/ferret/internal/common/type/pair"
	"github.com/michaelmacinnis/ferret/internal/memory"
	"github.com/michaelmacinnis/ferret/internal/system/lock"
)

const name = "atom"

// T (atom) holds a value that can be replaced under a lock.
type T struct {
	cell.Header

	data cell.Ref
	lock lock.T
}

type atom = T

// New creates an atom holding v.
func New(v cell.Ref) cell.Ref {
	return cell.New(atom{data: v.Copy(), lock: memory.Active().NewLock()})
}

// Deref returns the current value of a.
func (a *atom) Deref() cell.Ref {
	a.lock.Lock()
	defer a.lock.Unlock()

	return a.data.Copy()
}

// Drop releases the value held by a.
func (a *atom) Drop() {
	a.data.Release()
}

// Equal returns true if c is the same atom.
func (a *atom) Equal(c cell.Ref) bool {
	return c.Get() == cell.I(a)
}

// Name returns the name for an atom type.
func (a *atom) Name() string {
	return name
}

// Reset replaces the value of a with v and returns v.
func (a *atom) Reset(v cell.Ref) cell.Ref {
	a.lock.Lock()
	defer a.lock.Unlock()

	a.data.Release()
	a.data = v.Copy()

	return v.Copy()
}

// String returns the text representation of the atom a.
func (a *atom) String() string {
	v := a.Deref()
	defer v.Release()

	return fmt.Sprintf("%s<%s>", name, v)
}

// Swap replaces the value of a with the result of calling f with the
// current value followed by args. The new value is returned.
func (a *atom) Swap(f, args cell.Ref) cell.Ref {
	a.lock.Lock()
	defer a.lock.Unlock()

	l := pair.Cons(a.data, args)
	defer l.Release()

	v := callable.Apply(f, l)

	a.data.Release()
	a.data = v

	return v.Copy()
}

// Type returns the atomic tag.
func (a *atom) Type() cell.Tag {
	return cell.Atomic
}

// Swap replaces the value of the atom c with f applied to the current
// value and args.
func Swap(c, f cell.Ref, args ...cell.Ref) cell.Ref {
	l := cell.Nil

	for i := len(args) - 1; i >= 0; i-- {
		next := pair.Cons(args[i], l)
		l.Release()
		l = next
	}

	defer l.Release()

	return To(c).Swap(f, l)
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
	var t atom

	// The atom type is a cell.
	_ = cell.I(&t)

	// The atom type can be dereferenced.
	_ = deref.I(&t)

	// The atom type owns references.
	_ = cell.Owner(&t)
}
