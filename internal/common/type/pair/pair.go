// Released under an MIT license. See LICENSE.

// Package pair provides ferret's eager sequence node, the empty sequence,
// and the functions that let every sequence be treated alike.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/ferret/internal/common"
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/interface/seq"
)

const name = "sequence"

//nolint:gochecknoglobals
var (
	// Null is the empty sequence. It is also used to mark the end of a
	// sequence. It is never freed.
	Null cell.Ref
)

// T (pair) is an immutable sequence node. A nil tail ends the sequence.
type T struct {
	cell.Header

	car cell.Ref
	cdr cell.Ref
}

type pair = T

// New creates a sequence node with head h and tail t.
func New(h, t cell.Ref) cell.Ref {
	return cell.New(pair{car: h.Copy(), cdr: t.Copy()})
}

// Cons returns a new sequence with x in front of p.
func (p *pair) Cons(x cell.Ref) cell.Ref {
	return New(x, cell.Borrow(p))
}

// Drop releases the head and tail of p.
func (p *pair) Drop() {
	cell.Release(&p.car, &p.cdr)
}

// Equal returns true if c is a sequence with elements that are equal to p's.
func (p *pair) Equal(c cell.Ref) bool {
	return Equal(cell.Borrow(p), c)
}

// First returns the head of p.
func (p *pair) First() cell.Ref {
	return p.car.Copy()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// Rest returns the tail of p or the empty sequence if p is the last node.
func (p *pair) Rest() cell.Ref {
	if p.cdr.Nil() {
		return Null
	}

	return p.cdr.Copy()
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return Render(cell.Borrow(p))
}

// Type returns the sequence tag.
func (p *pair) Type() cell.Tag {
	return cell.Sequence
}

// Functions that accept any sequence, nil, or the empty sequence.

// Cons returns a sequence with x in front of c. If c is nil or the empty
// sequence a new single element sequence is created.
func Cons(x, c cell.Ref) cell.Ref {
	if c.Nil() || c.Is(cell.EmptySequence) {
		return New(x, cell.Nil)
	}

	return seq.To(c).Cons(x)
}

// End returns true if c has no elements.
func End(c cell.Ref) bool {
	if c.Nil() || c.Is(cell.EmptySequence) {
		return true
	}

	e, ok := c.Get().(interface{ Empty() bool })

	return ok && e.Empty()
}

// Equal returns true if a and b have the same number of elements and
// their elements are pairwise equal.
func Equal(a, b cell.Ref) bool {
	a, b = a.Copy(), b.Copy()

	defer func() {
		cell.Release(&a, &b)
	}()

	for {
		ae, be := End(a), End(b)
		if ae || be {
			return ae && be
		}

		x, y := First(a), First(b)
		same := x.Equal(y)
		cell.Release(&x, &y)

		if !same {
			return false
		}

		a = advance(a)
		b = advance(b)
	}
}

// First returns the first element of c. Nil and the empty sequence have
// no first element and yield nil.
func First(c cell.Ref) cell.Ref {
	if End(c) {
		return cell.Nil
	}

	return seq.To(c).First()
}

// Render returns the text representation of the sequence c.
func Render(c cell.Ref) string {
	var b strings.Builder

	b.WriteString("(")

	c = c.Copy()
	for i := 0; !End(c); i++ {
		if i > 0 {
			b.WriteString(" ")
		}

		v := First(c)
		b.WriteString(v.String())
		v.Release()

		c = advance(c)
	}

	c.Release()

	b.WriteString(")")

	return b.String()
}

// Rest returns everything after the first element of c. The rest of nil
// is the empty sequence and the rest of the empty sequence is nil.
func Rest(c cell.Ref) cell.Ref {
	if c.Nil() {
		return Null
	}

	if c.Is(cell.EmptySequence) {
		return cell.Nil
	}

	return seq.To(c).Rest()
}

// Replace the owned reference c with its rest.
func advance(c cell.Ref) cell.Ref {
	next := Rest(c)
	c.Release()

	return next
}

// The empty sequence.
type empty struct {
	cell.Header
}

func (e *empty) Cons(x cell.Ref) cell.Ref {
	return New(x, cell.Nil)
}

func (e *empty) Empty() bool {
	return true
}

func (e *empty) Equal(c cell.Ref) bool {
	return End(c)
}

func (e *empty) First() cell.Ref {
	return cell.Nil
}

func (e *empty) Name() string {
	return "empty-sequence"
}

func (e *empty) Rest() cell.Ref {
	return cell.Nil
}

func (e *empty) String() string {
	return "()"
}

func (e *empty) Type() cell.Tag {
	return cell.EmptySequence
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type is a sequence.
	_ = seq.I(&t)

	// The pair type owns references.
	_ = cell.Owner(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)

	// The empty sequence is a sequence.
	_ = seq.I(&empty{})
}

func init() { //nolint:gochecknoinits
	Null = cell.Immortal(&empty{})
}
