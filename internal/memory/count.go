// Released under an MIT license. See LICENSE.

package memory

import (
	"fmt"
	"sync/atomic"
)

// Counting is a reference counting policy.
type Counting int

const (
	// NoCount never reports a last owner. Only for the Collector backend.
	NoCount Counting = iota
	// Plain uses an ordinary integer. Only for single-threaded targets.
	Plain
	// Atomic uses an atomic integer.
	Atomic
)

//nolint:gochecknoglobals
var countings = map[string]Counting{
	"none":   NoCount,
	"plain":  Plain,
	"atomic": Atomic,
}

// Count is a reference count. The zero value is a count of zero.
type Count struct {
	n int64
}

// Inc records a new owner.
func (c Counting) Inc(n *Count) {
	switch c {
	case NoCount:
	case Plain:
		n.n++
	case Atomic:
		atomic.AddInt64(&n.n, 1)
	}
}

// Dec removes an owner and returns true if it was the last one.
func (c Counting) Dec(n *Count) bool {
	switch c {
	case NoCount:
		return false
	case Plain:
		n.n--

		return n.n == 0
	case Atomic:
		return atomic.AddInt64(&n.n, -1) == 0
	}

	return false
}

// Load returns the current number of owners.
func (c Counting) Load(n *Count) int64 {
	if c == Atomic {
		return atomic.LoadInt64(&n.n)
	}

	return n.n
}

// ParseCounting returns the counting policy named s.
func ParseCounting(s string) (Counting, error) {
	c, ok := countings[s]
	if !ok {
		return NoCount, fmt.Errorf("%w: unknown counting policy %q", ErrPolicy, s)
	}

	return c, nil
}

// String returns the name of the counting policy c.
func (c Counting) String() string {
	for k, v := range countings {
		if v == c {
			return k
		}
	}

	return fmt.Sprintf("counting(%d)", int(c))
}
