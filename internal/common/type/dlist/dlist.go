// Released under an MIT license. See LICENSE.

/*
Package dlist provides ferret's association structure.

A dlist keeps two sequences of equal length, one of keys and one of values.
Assoc adds a binding to the front of both. Older bindings for the same key
are not removed but are hidden by the newer binding because lookups scan
from the front. As a sequence a dlist is a list of (key value) pairs, most
recent first.
*/
package dlist

import (
	"github.com/michaelmacinnis/ferret/internal/common"
	"github.com/michaelmacinnis/ferret/internal/common/interface/callable"
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/interface/seq"
	"github.com/michaelmacinnis/ferret/internal/common/type/list"
	"github.com/michaelmacinnis/ferret/internal/common/type/pair"
	"github.com/michaelmacinnis/ferret/internal/common/validate"
)

const name = "dlist"

// T (dlist) is an association structure.
type T struct {
	cell.Header

	keys cell.Ref
	vals cell.Ref
}

type dlist = T

// New creates a dlist from alternating keys and values. The first key
// passed is the front binding.
func New(kvs ...cell.Ref) cell.Ref {
	if len(kvs)%2 != 0 {
		panic("dlist requires an even number of keys and values")
	}

	keys := make([]cell.Ref, 0, len(kvs)/2)
	vals := make([]cell.Ref, 0, len(kvs)/2)

	for i := 0; i < len(kvs); i += 2 {
		keys = append(keys, kvs[i])
		vals = append(vals, kvs[i+1])
	}

	k, v := list.New(keys...), list.New(vals...)
	defer cell.Release(&k, &v)

	return Wrap(k, v)
}

// Wrap creates a dlist from sequences of keys and values of equal length.
func Wrap(keys, vals cell.Ref) cell.Ref {
	return cell.New(dlist{keys: keys.Copy(), vals: vals.Copy()})
}

// Assoc returns a new dlist with k bound to v in front of every binding in d.
func (d *dlist) Assoc(k, v cell.Ref) cell.Ref {
	keys, vals := pair.Cons(k, d.keys), pair.Cons(v, d.vals)
	defer cell.Release(&keys, &vals)

	return Wrap(keys, vals)
}

// Cons returns a new dlist with the (key value) pair x bound in front.
func (d *dlist) Cons(x cell.Ref) cell.Ref {
	kv := validate.Fixed(x, 2, 2)
	defer validate.Release(kv)

	return d.Assoc(kv[0], kv[1])
}

// Dissoc returns a new dlist without the first binding for k. The order
// of the remaining bindings is unchanged.
func (d *dlist) Dissoc(k cell.Ref) cell.Ref {
	var before [][2]cell.Ref

	keys, vals := d.keys.Copy(), d.vals.Copy()

	found := false
	for !pair.End(keys) {
		fk, fv := pair.First(keys), pair.First(vals)

		keys, vals = advance(keys), advance(vals)

		if fk.Equal(k) {
			cell.Release(&fk, &fv)

			found = true

			break
		}

		before = append(before, [2]cell.Ref{fk, fv})
	}

	if !found {
		for i := range before {
			cell.Release(&before[i][0], &before[i][1])
		}

		cell.Release(&keys, &vals)

		return cell.Borrow(d).Copy()
	}

	for i := len(before) - 1; i >= 0; i-- {
		nk, nv := pair.Cons(before[i][0], keys), pair.Cons(before[i][1], vals)
		cell.Release(&keys, &vals, &before[i][0], &before[i][1])
		keys, vals = nk, nv
	}

	defer cell.Release(&keys, &vals)

	return Wrap(keys, vals)
}

// Drop releases the keys and values of d.
func (d *dlist) Drop() {
	cell.Release(&d.keys, &d.vals)
}

// Empty returns true if d has no bindings.
func (d *dlist) Empty() bool {
	return pair.End(d.keys)
}

// Equal returns true if c is a sequence of the same (key value) pairs.
func (d *dlist) Equal(c cell.Ref) bool {
	return pair.Equal(cell.Borrow(d), c)
}

// First returns the front binding of d as a (key value) pair.
func (d *dlist) First() cell.Ref {
	if d.Empty() {
		return cell.Nil
	}

	k, v := pair.First(d.keys), pair.First(d.vals)
	defer cell.Release(&k, &v)

	return list.New(k, v)
}

// Invoke looks up the first argument. The optional second argument is
// returned if there is no binding.
func (d *dlist) Invoke(args cell.Ref) cell.Ref {
	v := validate.Fixed(args, 1, 2)
	defer validate.Release(v)

	notFound := cell.Nil
	if len(v) > 1 {
		notFound = v[1]
	}

	return d.ValAt(v[0], notFound)
}

// Keys returns the keys of d, most recent first.
func (d *dlist) Keys() cell.Ref {
	return d.keys.Copy()
}

// Name returns the name for a dlist type.
func (d *dlist) Name() string {
	return name
}

// Rest returns a dlist of every binding after the front binding of d.
func (d *dlist) Rest() cell.Ref {
	keys := pair.Rest(d.keys)
	if pair.End(keys) {
		keys.Release()

		return pair.Null
	}

	vals := pair.Rest(d.vals)
	defer cell.Release(&keys, &vals)

	return Wrap(keys, vals)
}

// String returns the text representation of the dlist d.
func (d *dlist) String() string {
	return pair.Render(cell.Borrow(d))
}

// Type returns the dlist tag.
func (d *dlist) Type() cell.Tag {
	return cell.DList
}

// ValAt returns the value bound to k or notFound if k is not bound.
func (d *dlist) ValAt(k, notFound cell.Ref) cell.Ref {
	keys, vals := d.keys.Copy(), d.vals.Copy()
	defer func() {
		cell.Release(&keys, &vals)
	}()

	for !pair.End(keys) {
		fk := pair.First(keys)
		same := fk.Equal(k)
		fk.Release()

		if same {
			return pair.First(vals)
		}

		keys, vals = advance(keys), advance(vals)
	}

	return notFound.Copy()
}

// Vals returns the values of d, most recent first.
func (d *dlist) Vals() cell.Ref {
	return d.vals.Copy()
}

// Assoc returns a new dlist with k bound to v in front of every binding
// in m. If m is nil a new dlist is created.
func Assoc(m, k, v cell.Ref) cell.Ref {
	if m.Nil() {
		return New(k, v)
	}

	return To(m).Assoc(k, v)
}

// Dissoc returns a new dlist without the first binding for k in m.
func Dissoc(m, k cell.Ref) cell.Ref {
	return To(m).Dissoc(k)
}

// Lookup returns the value bound to k in m or notFound.
func Lookup(m, k, notFound cell.Ref) cell.Ref {
	return To(m).ValAt(k, notFound)
}

func advance(c cell.Ref) cell.Ref {
	next := pair.Rest(c)
	c.Release()

	return next
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

	if c.Nil() {
		panic("nil is not a " + name)
	}

	panic(c.Get().Name() + " is not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t dlist

	// The dlist type is a cell.
	_ = cell.I(&t)

	// The dlist type is callable.
	_ = callable.I(&t)

	// The dlist type is a sequence.
	_ = seq.I(&t)

	// The dlist type owns references.
	_ = cell.Owner(&t)

	// The dlist type is a stringer.
	_ = common.Stringer(&t)
}
