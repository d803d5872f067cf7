// Released under an MIT license. See LICENSE.

//go:build unix

package memory

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Reserve an anonymous private mapping so the arena lives outside the
// garbage collected heap.
func reserve(n int) ([]byte, func() error, error) {
	b, err := unix.Mmap(
		-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot reserve %d byte pool: %w", n, err)
	}

	return b, func() error { return unix.Munmap(b) }, nil
}
