// Released under an MIT license. See LICENSE.

package memory

import (
	"github.com/michaelmacinnis/ferret/internal/system/lock"
)

// Synchronized wraps an allocator with a lock.
type Synchronized struct {
	l lock.T
	a Allocator
}

// Synchronize wraps a with the lock l.
func Synchronize(a Allocator, l lock.T) *Synchronized {
	return &Synchronized{l: l, a: a}
}

// Allocate allocates from the wrapped allocator while holding the lock.
func (s *Synchronized) Allocate(size int) (Block, bool) {
	s.l.Lock()
	defer s.l.Unlock()

	return s.a.Allocate(size)
}

// Free frees b to the wrapped allocator while holding the lock.
func (s *Synchronized) Free(b Block) {
	s.l.Lock()
	defer s.l.Unlock()

	s.a.Free(b)
}

// Stats returns the wrapped allocator's statistics.
func (s *Synchronized) Stats() Stats {
	s.l.Lock()
	defer s.l.Unlock()

	return s.a.Stats()
}

// Close closes the wrapped allocator, if it can be closed.
func (s *Synchronized) Close() error {
	if c, ok := s.a.(interface{ Close() error }); ok {
		return c.Close()
	}

	return nil
}

// Unwrap returns the wrapped allocator.
func (s *Synchronized) Unwrap() Allocator {
	return s.a
}
