// Released under an MIT license. See LICENSE.

package memory

import "sync/atomic"

// system delegates to the Go runtime. Blocks are tracked only by count.
type system struct {
	next   atomic.Int64
	allocs atomic.Uint64
	frees  atomic.Uint64
}

func (s *system) Allocate(size int) (Block, bool) {
	s.allocs.Add(1)

	return Block{
		Addr:  int(s.next.Add(1)),
		Bytes: make([]byte, size),
	}, true
}

func (s *system) Free(_ Block) {
	s.frees.Add(1)
}

func (s *system) Stats() Stats {
	return Stats{
		Allocations: s.allocs.Load(),
		Frees:       s.frees.Load(),
	}
}

// collector leaves lifetime to the Go garbage collector.
type collector struct {
	allocs atomic.Uint64
}

func (c *collector) Allocate(size int) (Block, bool) {
	n := c.allocs.Add(1)

	return Block{Addr: int(n), Bytes: make([]byte, size)}, true
}

func (*collector) Free(_ Block) {}

func (c *collector) Stats() Stats {
	return Stats{Allocations: c.allocs.Load()}
}
