// Released under an MIT license. See LICENSE.

/*
Package future provides ferret's background future.

On targets with platform threads the producer starts running in its own
goroutine as soon as the future is created. The goroutine holds a reference
to the future until the producer returns. There is no cancellation. Other
targets have a single thread of execution so the producer runs to
completion inside New.

If the producer panics the panic is recovered and logged. The future is
then ready and Deref panics with a *Failure. Result returns the failure
as an error.
*/
package future

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/michaelmacinnis/ferret/internal/common/interface/callable"
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/interface/deref"
	"github.com/michaelmacinnis/ferret/internal/memory"
)

const name = "future"

// Failure is the error recorded when a producer panics.
type Failure struct {
	Value any
}

// Error returns the text of the failure.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s failed: %v", name, f.Value)
}

// Unwrap returns the value the producer panicked with, if it is an error.
func (f *Failure) Unwrap() error {
	if err, ok := f.Value.(error); ok {
		return err
	}

	return nil
}

// T (future) is a value computed in the background.
type T struct {
	cell.Header

	done chan struct{}
	err  *Failure
	val  cell.Ref
}

type future = T

// New creates a future and starts running fn with no arguments.
func New(fn cell.Ref) cell.Ref {
	r := cell.New(future{done: make(chan struct{})})

	if !memory.Active().Threads.Parallel() {
		To(r).run(fn)

		return r
	}

	self, fn := r.Copy(), fn.Copy()

	go func() {
		defer cell.Release(&self, &fn)

		To(self).run(fn)
	}()

	return r
}

// Deref waits for the producer to finish and returns its result. If the
// producer panicked Deref panics with a *Failure.
func (f *future) Deref() cell.Ref {
	v, err := f.Result()
	if err != nil {
		panic(err)
	}

	return v
}

// Drop releases the result of f.
func (f *future) Drop() {
	f.val.Release()
}

// Equal returns true if c is the same future.
func (f *future) Equal(c cell.Ref) bool {
	return c.Get() == cell.I(f)
}

// IsReady returns true if the producer has finished. It does not block.
func (f *future) IsReady() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Name returns the name for a future type.
func (f *future) Name() string {
	return name
}

// Result waits for the producer to finish and returns its result or the
// failure recorded if it panicked.
func (f *future) Result() (cell.Ref, error) {
	<-f.done

	if f.err != nil {
		return cell.Nil, f.err
	}

	return f.val.Copy(), nil
}

// Type returns the async tag.
func (f *future) Type() cell.Tag {
	return cell.Async
}

// Wait blocks until the producer has finished.
func (f *future) Wait() {
	<-f.done
}

func (f *future) run(fn cell.Ref) {
	defer close(f.done)

	defer func() {
		if r := recover(); r != nil {
			f.err = &Failure{Value: r}

			log().Errorf("%s", f.err)
		}
	}()

	f.val = callable.Run(fn)
}

func log() commonlog.Logger {
	return commonlog.GetLogger("ferret.future")
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
	var t future

	// The future type is a cell.
	_ = cell.I(&t)

	// The future type can be dereferenced.
	_ = deref.I(&t)

	// The future type owns references.
	_ = cell.Owner(&t)
}
