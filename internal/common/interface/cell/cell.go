// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all ferret objects and the
// reference through which every object is held.
package cell

import (
	"unsafe"

	"github.com/michaelmacinnis/ferret/internal/memory"
)

// Tag identifies the kind of an object without a dynamic type test.
type Tag int

// One tag per concrete kind.
const (
	Lambda Tag = iota + 1
	Boolean
	Pointer
	Value
	Number
	EmptySequence
	Sequence
	LazySequence
	DList
	Keyword
	String
	Atomic
	Async
	Delayed
	ElapsedMicros
)

// I (cell) is the basic unit of storage in ferret.
//
// Equal is only called by Ref.Equal with a non-nil reference to an object
// that is either the same kind or, when both are sequences, any sequence.
type I interface {
	Equal(o Ref) bool
	Hdr() *Header
	Name() string
	Type() Tag
}

// Owner is implemented by objects that hold references. Drop is called
// once, when the last reference to the object is released, and must
// release every reference the object holds.
type Owner interface {
	Drop()
}

// Header is embedded in every object. It records where the object's
// storage came from and how many references to it exist.
type Header struct {
	heap  *memory.Heap
	block memory.Block
	count memory.Count
}

// Hdr returns h. Embedding a Header satisfies part of I.
func (h *Header) Hdr() *Header {
	return h
}

// Block returns the storage allocated for the object.
func (h *Header) Block() memory.Block {
	return h.block
}

// New allocates storage for v from the active heap and returns the only
// reference to it. If the heap is exhausted New panics with an error
// wrapping memory.ErrExhausted.
func New[T any, P interface {
	*T
	I
}](v T) Ref {
	heap := memory.Active()

	o := P(&v)

	h := o.Hdr()
	h.block = heap.MustAllocate(int(unsafe.Sizeof(v)))
	h.heap = heap

	heap.Counting.Inc(&h.count)

	return Ref{o}
}

// Immortal returns a reference to o that is never counted or freed.
// Used for process-wide singletons.
func Immortal(o I) Ref {
	return Ref{o}
}

// Borrow returns an uncounted reference to o. The reference must not
// outlive the caller's own reference to o and must not be released.
func Borrow(o I) Ref {
	return Ref{o}
}

// Ref (reference) owns at most one object. The zero value is nil, the
// absence of a value.
//
// Assigning a Ref moves it. Copy creates a new owner and Release gives up
// ownership. When the last owner releases an object its references are
// released and its storage is returned to the heap it came from.
type Ref struct {
	o I
}

// Nil is the absence of a value.
//
//nolint:gochecknoglobals
var Nil = Ref{}

// Bool returns false for nil and a false boolean and true otherwise.
func (r Ref) Bool() bool {
	if r.o == nil {
		return false
	}

	if r.o.Type() == Boolean {
		if b, ok := r.o.(interface{ Bool() bool }); ok {
			return b.Bool()
		}
	}

	return true
}

// Copy returns a new reference to the same object.
func (r Ref) Copy() Ref {
	if r.o != nil {
		h := r.o.Hdr()
		if h.heap != nil {
			h.heap.Counting.Inc(&h.count)
		}
	}

	return r
}

// Equal returns true if r and o refer to equal objects. Two nils are equal
// and nil is not equal to anything else. Sequences of any kind compare
// element by element. Otherwise objects must be the same kind.
func (r Ref) Equal(o Ref) bool {
	if r.o == nil || o.o == nil {
		return r.o == nil && o.o == nil
	}

	if r.o == o.o {
		return true
	}

	if sequence(r.o) && sequence(o.o) {
		return r.o.Equal(o)
	}

	if r.o.Type() != o.o.Type() {
		return false
	}

	return r.o.Equal(o)
}

// Get returns the object r refers to or nil.
func (r Ref) Get() I {
	return r.o
}

// Is returns true if r refers to an object of kind t.
func (r Ref) Is(t Tag) bool {
	return r.o != nil && r.o.Type() == t
}

// Move returns r's reference and leaves r nil.
func (r *Ref) Move() Ref {
	m := *r
	r.o = nil

	return m
}

// Nil returns true if r is nil.
func (r Ref) Nil() bool {
	return r.o == nil
}

// Refs returns the number of owners of r's object. Uncounted objects
// report zero.
func (r Ref) Refs() int64 {
	if r.o == nil {
		return 0
	}

	h := r.o.Hdr()
	if h.heap == nil {
		return 0
	}

	return h.heap.Counting.Load(&h.count)
}

// Release gives up r's ownership and leaves r nil.
func (r *Ref) Release() {
	o := r.o
	if o == nil {
		return
	}

	r.o = nil

	h := o.Hdr()
	if h.heap == nil || !h.heap.Counting.Dec(&h.count) {
		return
	}

	if d, ok := o.(Owner); ok {
		d.Drop()
	}

	h.heap.Free(h.block)
	h.block = memory.Block{}
}

// String returns the text representation of r's object.
func (r Ref) String() string {
	if r.o == nil {
		return "nil"
	}

	if s, ok := r.o.(interface{ String() string }); ok {
		return s.String()
	}

	return r.o.Name()
}

// Type returns the kind of r's object. Nil has no kind and reports zero.
func (r Ref) Type() Tag {
	if r.o == nil {
		return 0
	}

	return r.o.Type()
}

// Release releases every reference in refs.
func Release(refs ...*Ref) {
	for _, r := range refs {
		r.Release()
	}
}

// The same method set as seq.I. Declared here to avoid an import cycle.
func sequence(o I) bool {
	_, ok := o.(interface {
		Cons(x Ref) Ref
		First() Ref
		Rest() Ref
	})

	return ok
}
