// Released under an MIT license. See LICENSE.

// Package lock provides the mutual-exclusion primitive used by ferret's
// mutable objects and by the synchronized allocator. What a lock does depends
// on the threading mode of the target: nothing at all on single-threaded
// targets, a platform mutex on hosted targets, and a global critical section
// (the equivalent of disabling interrupts) on embedded targets.
package lock

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Mode selects the kind of lock New returns.
type Mode int

const (
	// None is for single-threaded targets. Locking is a no-op.
	None Mode = iota
	// Platform uses an operating system backed mutex per lock.
	Platform
	// Interrupts masks interrupts while any lock is held. Embedded targets
	// run a single goroutine so masking is all the exclusion there is.
	// Acquisitions nest.
	Interrupts
)

// T (lock) is the interface satisfied by every lock.
type T = sync.Locker

//nolint:gochecknoglobals
var (
	depth atomic.Int64

	names = map[string]Mode{
		"none":       None,
		"platform":   Platform,
		"interrupts": Interrupts,
	}
)

// New creates a lock for mode m.
func New(m Mode) T {
	switch m {
	case None:
		return nop{}
	case Platform:
		return &sync.Mutex{}
	case Interrupts:
		return masked{}
	}

	panic(fmt.Sprintf("unknown lock mode %d", m))
}

// Parse returns the mode named s.
func Parse(s string) (Mode, error) {
	m, ok := names[s]
	if !ok {
		return None, fmt.Errorf("unknown threads mode %q", s)
	}

	return m, nil
}

// String returns the name of the mode m.
func (m Mode) String() string {
	for k, v := range names {
		if v == m {
			return k
		}
	}

	return fmt.Sprintf("mode(%d)", int(m))
}

// Threaded returns true if more than one thread of execution may exist.
func (m Mode) Threaded() bool {
	return m != None
}

// Parallel returns true if ferret may start goroutines of its own. Only a
// platform mutex excludes goroutines from each other.
func (m Mode) Parallel() bool {
	return m == Platform
}

type nop struct{}

func (nop) Lock()   {}
func (nop) Unlock() {}

// Masked returns true if a lock created in Interrupts mode is held.
func Masked() bool {
	return depth.Load() > 0
}

type masked struct{}

func (masked) Lock() {
	depth.Add(1)
}

func (masked) Unlock() {
	if depth.Add(-1) < 0 {
		panic("unlock of unlocked interrupt mask")
	}
}
