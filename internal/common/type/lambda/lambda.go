// Released under an MIT license. See LICENSE.

// Package lambda provides ferret's function type.
package lambda

import (
	"fmt"

	"github.com/michaelmacinnis/ferret/internal/common/interface/callable"
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
)

const name = "lambda"

// Func is the Go signature of a ferret function. Args are borrowed and
// the result is owned by the caller.
type Func func(args cell.Ref) cell.Ref

// T (lambda) wraps a Func and the references it closes over.
type T struct {
	cell.Header

	env []cell.Ref
	fn  Func
}

type lambda = T

// New creates a lambda that calls fn. The lambda holds a reference to each
// value in env until it is released.
func New(fn Func, env ...cell.Ref) cell.Ref {
	l := lambda{fn: fn, env: make([]cell.Ref, len(env))}

	for i, v := range env {
		l.env[i] = v.Copy()
	}

	return cell.New(l)
}

// Drop releases the references held by l.
func (l *lambda) Drop() {
	for i := range l.env {
		l.env[i].Release()
	}

	l.env = nil
	l.fn = nil
}

// Equal returns true if c is the same lambda.
func (l *lambda) Equal(c cell.Ref) bool {
	return c.Get() == cell.I(l)
}

// Invoke calls l with args.
func (l *lambda) Invoke(args cell.Ref) cell.Ref {
	return l.fn(args)
}

// Name returns the name for a lambda type.
func (l *lambda) Name() string {
	return name
}

// String returns the text representation of the lambda l.
func (l *lambda) String() string {
	return fmt.Sprintf("%s %p", name, l)
}

// Type returns the lambda tag.
func (l *lambda) Type() cell.Tag {
	return cell.Lambda
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
	var t lambda

	// The lambda type is a cell.
	_ = cell.I(&t)

	// The lambda type is callable.
	_ = callable.I(&t)

	// The lambda type owns references.
	_ = cell.Owner(&t)
}
