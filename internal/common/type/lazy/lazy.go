// Released under an MIT license. See LICENSE.

/*
Package lazy provides ferret's lazy sequence.

A lazy sequence holds a producer, a callable that takes no arguments and
returns a sequence. Only the head is remembered. Every call to Rest runs
the producer again so a producer with side effects yields a different tail
each time. Callers that need a stable tail must keep the reference Rest
returns.
*/
package lazy

import (
	"github.com/michaelmacinnis/ferret/internal/common"
	"github.com/michaelmacinnis/ferret/internal/common/interface/callable"
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/interface/seq"
	"github.com/michaelmacinnis/ferret/internal/common/type/pair"
	"github.com/michaelmacinnis/ferret/internal/memory"
	"github.com/michaelmacinnis/ferret/internal/system/lock"
)

const name = "lazy-sequence"

// T (lazy) is a sequence computed on demand.
type T struct {
	cell.Header

	head   cell.Ref
	lock   lock.T
	none   bool // The producer yielded no elements.
	seen   bool // Head has been computed or supplied.
	thunk  cell.Ref
	tailed bool // Head was supplied and thunk produces the tail.
}

type lazy = T

// New creates a lazy sequence from the producer thunk.
func New(thunk cell.Ref) cell.Ref {
	return cell.New(lazy{
		lock:  memory.Active().NewLock(),
		thunk: thunk.Copy(),
	})
}

// WithHead creates a lazy sequence with head h in front of the sequence
// produced by thunk.
func WithHead(h, thunk cell.Ref) cell.Ref {
	return cell.New(lazy{
		head:   h.Copy(),
		lock:   memory.Active().NewLock(),
		seen:   true,
		tailed: true,
		thunk:  thunk.Copy(),
	})
}

// Cons returns a new sequence with x in front of l.
func (l *lazy) Cons(x cell.Ref) cell.Ref {
	if l.tailed {
		return pair.New(x, cell.Borrow(l))
	}

	return WithHead(x, l.thunk)
}

// Drop releases the head and producer of l.
func (l *lazy) Drop() {
	cell.Release(&l.head, &l.thunk)
}

// Empty returns true if the producer yields no elements.
func (l *lazy) Empty() bool {
	if l.tailed {
		return false
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	l.realize()

	return l.none
}

// Equal returns true if c is a sequence with elements that are equal to l's.
func (l *lazy) Equal(c cell.Ref) bool {
	return pair.Equal(cell.Borrow(l), c)
}

// First returns the head of l, running the producer if necessary.
func (l *lazy) First() cell.Ref {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.realize()

	return l.head.Copy()
}

// Name returns the name for a lazy sequence type.
func (l *lazy) Name() string {
	return name
}

// Rest returns everything after the head of l. The producer is run on
// every call.
func (l *lazy) Rest() cell.Ref {
	s := l.run()

	if l.tailed {
		if s.Nil() {
			return pair.Null
		}

		return s
	}

	defer s.Release()

	return pair.Rest(s)
}

// String returns the text representation of the lazy sequence l.
func (l *lazy) String() string {
	return pair.Render(cell.Borrow(l))
}

// Type returns the lazy sequence tag.
func (l *lazy) Type() cell.Tag {
	return cell.LazySequence
}

// Run the producer once to find the head. The lock must be held.
func (l *lazy) realize() {
	if l.seen {
		return
	}

	s := l.run()
	defer s.Release()

	l.head = pair.First(s)
	l.none = pair.End(s)
	l.seen = true
}

func (l *lazy) run() cell.Ref {
	return callable.Run(l.thunk)
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
	var t lazy

	// The lazy type is a cell.
	_ = cell.I(&t)

	// The lazy type is a sequence.
	_ = seq.I(&t)

	// The lazy type owns references.
	_ = cell.Owner(&t)

	// The lazy type is a stringer.
	_ = common.Stringer(&t)
}
