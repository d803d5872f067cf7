// Released under an MIT license. See LICENSE.

// Package memory provides the raw storage behind every ferret object.
//
// Two independent choices make up a heap: the backend that hands out
// storage (the system heap, a fixed arena of pages, or an external
// collector) and the policy used to count references to objects. A heap
// for a multi-threaded target wraps its backend in a lock.
package memory

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/tliron/commonlog"

	"github.com/michaelmacinnis/ferret/internal/system/lock"
)

// Backend selects the source of storage for a heap.
type Backend int

const (
	// System delegates to the Go runtime.
	System Backend = iota
	// Pool manages a fixed arena of pages.
	Pool
	// Collector hands lifetime to a tracing collector. Free is a no-op.
	Collector
)

//nolint:gochecknoglobals
var (
	// ErrExhausted is raised when a backend cannot satisfy a request.
	ErrExhausted = errors.New("memory exhausted")

	// ErrPolicy is returned for a backend and counting policy that
	// cannot be combined.
	ErrPolicy = errors.New("incompatible memory policy")

	active atomic.Pointer[Heap]

	backends = map[string]Backend{
		"system":    System,
		"pool":      Pool,
		"collector": Collector,
	}
)

// Block is a run of storage returned by an Allocator. Addr identifies the
// payload to the allocator that produced it. It is never zero for a
// successful allocation.
type Block struct {
	Addr  int
	Bytes []byte
}

// Stats reports allocator activity.
type Stats struct {
	Allocations uint64
	Frees       uint64
	Failures    uint64

	// Only reported by arena backed allocators.
	Pages     int
	PagesUsed int
	PageSize  int
}

// Live returns the number of allocations that have not been freed.
func (s Stats) Live() uint64 {
	return s.Allocations - s.Frees
}

// Allocator is the interface satisfied by every backend.
type Allocator interface {
	// Allocate returns a block with at least size bytes of payload.
	// The second result is false if the request cannot be satisfied.
	Allocate(size int) (Block, bool)

	// Free returns b to the allocator. Freeing a block not obtained from
	// this allocator, or freeing it twice, is undefined.
	Free(b Block)

	Stats() Stats
}

// Settings describes a heap.
type Settings struct {
	Backend  Backend
	Counting Counting
	Threads  lock.Mode

	// Arena size and page size in bytes. Only used by the Pool backend.
	PoolSize int
	PageSize int
}

// Heap is an allocator composed with a reference counting policy.
type Heap struct {
	Allocator

	Backend  Backend
	Counting Counting
	Threads  lock.Mode
}

// New creates a heap from s.
func New(s Settings) (*Heap, error) {
	if (s.Backend == Collector) != (s.Counting == NoCount) {
		return nil, fmt.Errorf(
			"%w: %s backend with %s counting",
			ErrPolicy, s.Backend, s.Counting,
		)
	}

	if s.Counting == Atomic && !s.Threads.Threaded() {
		return nil, fmt.Errorf(
			"%w: atomic counting on a single-threaded target", ErrPolicy,
		)
	}

	if s.Counting == Plain && s.Threads.Parallel() {
		return nil, fmt.Errorf(
			"%w: plain counting with %s threads", ErrPolicy, s.Threads,
		)
	}

	var a Allocator

	switch s.Backend {
	case System:
		a = &system{}
	case Pool:
		p, err := NewPool(s.PoolSize, s.PageSize)
		if err != nil {
			return nil, err
		}

		a = p
	case Collector:
		a = &collector{}
	default:
		return nil, fmt.Errorf("%w: unknown backend %d", ErrPolicy, s.Backend)
	}

	if s.Threads.Threaded() {
		a = Synchronize(a, lock.New(s.Threads))
	}

	return &Heap{
		Allocator: a,
		Backend:   s.Backend,
		Counting:  s.Counting,
		Threads:   s.Threads,
	}, nil
}

// Active returns the heap used to construct objects.
func Active() *Heap {
	return active.Load()
}

// Use makes h the active heap and returns the heap it replaced.
// Objects keep a reference to the heap that allocated them so objects
// created before the switch are still freed correctly.
func Use(h *Heap) *Heap {
	if h == nil {
		panic("cannot use a nil heap")
	}

	log().Infof(
		"using %s backend with %s counting (threads: %s)",
		h.Backend, h.Counting, h.Threads,
	)

	return active.Swap(h)
}

// MustAllocate allocates size bytes or panics with ErrExhausted.
func (h *Heap) MustAllocate(size int) Block {
	b, ok := h.Allocate(size)
	if !ok {
		panic(fmt.Errorf("%w: cannot allocate %d bytes", ErrExhausted, size))
	}

	return b
}

// NewLock creates a lock appropriate for the heap's threading mode.
func (h *Heap) NewLock() lock.T {
	return lock.New(h.Threads)
}

// Close releases any storage reserved by the heap's backend.
func (h *Heap) Close() error {
	if c, ok := h.Allocator.(interface{ Close() error }); ok {
		return c.Close()
	}

	return nil
}

// ParseBackend returns the backend named s.
func ParseBackend(s string) (Backend, error) {
	b, ok := backends[s]
	if !ok {
		return System, fmt.Errorf("%w: unknown backend %q", ErrPolicy, s)
	}

	return b, nil
}

// String returns the name of the backend b.
func (b Backend) String() string {
	for k, v := range backends {
		if v == b {
			return k
		}
	}

	return fmt.Sprintf("backend(%d)", int(b))
}

func log() commonlog.Logger {
	return commonlog.GetLogger("ferret.memory")
}

func init() { //nolint:gochecknoinits
	active.Store(&Heap{
		Allocator: Synchronize(&system{}, lock.New(lock.Platform)),
		Backend:   System,
		Counting:  Atomic,
		Threads:   lock.Platform,
	})
}
