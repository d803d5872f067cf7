// Released under an MIT license. See LICENSE.

// Package elapsed provides ferret's elapsed-microseconds timer.
package elapsed

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/type/num"
)

const name = "elapsed-micros"

//nolint:gochecknoglobals
var epoch = time.Now()

// T (elapsed) measures the microseconds since it was created or reset.
type T struct {
	cell.Header

	us atomic.Int64
}

type elapsed = T

// New creates a timer that starts now.
func New() cell.Ref {
	r := cell.New(elapsed{})
	To(r).Reset()

	return r
}

// Elapsed returns the microseconds since e was created or reset as a number.
func (e *elapsed) Elapsed() cell.Ref {
	return num.New(float64(e.Micros()))
}

// Equal returns true if c is the same timer.
func (e *elapsed) Equal(c cell.Ref) bool {
	return c.Get() == cell.I(e)
}

// IsElapsed returns true if at least us microseconds have passed.
func (e *elapsed) IsElapsed(us float64) bool {
	return e.Micros() >= int64(us)
}

// Micros returns the microseconds since e was created or reset.
func (e *elapsed) Micros() int64 {
	return now() - e.us.Load()
}

// Name returns the name for an elapsed type.
func (e *elapsed) Name() string {
	return name
}

// Reset restarts e.
func (e *elapsed) Reset() {
	e.us.Store(now())
}

// String returns the text representation of the timer e.
func (e *elapsed) String() string {
	return fmt.Sprintf("%s<%d>", name, e.Micros())
}

// Type returns the elapsed micros tag.
func (e *elapsed) Type() cell.Tag {
	return cell.ElapsedMicros
}

func now() int64 {
	return time.Since(epoch).Microseconds()
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
	var t elapsed

	// The elapsed type is a cell.
	_ = cell.I(&t)
}
