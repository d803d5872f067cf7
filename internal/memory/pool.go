// Released under an MIT license. See LICENSE.

package memory

import (
	"encoding/binary"
	"fmt"
)

// DefaultPageSize matches the width of a machine word on hosted targets.
const DefaultPageSize = 8

// Arena is a fixed region divided into pages. Occupancy is tracked with one
// bit per page. Every allocation is a run of pages where the first (header)
// page holds the length of the run and the payload starts on the next page.
// Free reads the header to learn how many pages to release.
//
// An Arena is not safe for concurrent use. Wrap it with Synchronize.
type Arena struct {
	region  []byte
	release func() error

	size  int // Bytes per page.
	pages int
	limit int // Longest run a header page can describe.

	used   bitset
	offset int // Where the next scan starts.

	allocs   uint64
	frees    uint64
	failures uint64
	inuse    int
}

// NewPool creates an arena of size bytes divided into pages of pageSize
// bytes. A page must be large enough to hold a run length. Pages narrower
// than a machine word limit the length of a run.
func NewPool(size, pageSize int) (*Arena, error) {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	switch pageSize {
	case 1, 2, 4, 8:
	default:
		if pageSize < 8 {
			return nil, fmt.Errorf("%w: page size %d", ErrPolicy, pageSize)
		}
	}

	pages := size / pageSize
	if pages < 2 {
		return nil, fmt.Errorf(
			"%w: pool of %d bytes holds no %d byte pages",
			ErrPolicy, size, pageSize,
		)
	}

	region, release, err := reserve(pages * pageSize)
	if err != nil {
		return nil, err
	}

	limit := pages
	if pageSize < 8 {
		widest := 1<<(8*pageSize) - 1
		if widest < limit {
			limit = widest
		}
	}

	return &Arena{
		region:  region,
		release: release,
		size:    pageSize,
		pages:   pages,
		limit:   limit,
		used:    newBitset(pages),
	}, nil
}

// Allocate returns a block of at least n bytes. It resumes scanning where
// the previous allocation ended and wraps around to the first page once
// before giving up.
func (a *Arena) Allocate(n int) (Block, bool) {
	length := a.span(n)

	page, ok := a.scan(length, a.offset)
	if !ok {
		page, ok = a.scan(length, 0)
	}

	if !ok {
		a.failures++

		log().Warningf(
			"pool exhausted: %d pages requested, %d of %d in use",
			length, a.inuse, a.pages,
		)

		return Block{}, false
	}

	a.stamp(page, length)

	a.offset = page + length
	for i := page; i < a.offset; i++ {
		a.used.set(i)
	}

	a.allocs++
	a.inuse += length

	start := (page + 1) * a.size
	payload := a.region[start : start+n : start+n]
	clear(payload)

	return Block{Addr: start, Bytes: payload}, true
}

// Free releases the run of pages that b was allocated from.
func (a *Arena) Free(b Block) {
	head := b.Addr/a.size - 1
	length := a.length(head)

	for i := head; i < head+length; i++ {
		a.used.reset(i)
	}

	a.frees++
	a.inuse -= length
}

// Stats returns allocation counts and page occupancy.
func (a *Arena) Stats() Stats {
	return Stats{
		Allocations: a.allocs,
		Frees:       a.frees,
		Failures:    a.failures,
		Pages:       a.pages,
		PagesUsed:   a.inuse,
		PageSize:    a.size,
	}
}

// Capacity returns the largest payload a single allocation can have.
func (a *Arena) Capacity() int {
	return (a.limit - 1) * a.size
}

// Close releases the arena's region. No block from the arena may be used
// after Close.
func (a *Arena) Close() error {
	if a.release == nil {
		return nil
	}

	err := a.release()
	a.release = nil
	a.region = nil

	return err
}

// Pages needed for n bytes of payload plus the header page.
func (a *Arena) span(n int) int {
	return (n+a.size-1)/a.size + 1
}

// First page of the first free run of length pages at or after offset.
func (a *Arena) scan(length, offset int) (int, bool) {
	if length > a.limit {
		return 0, false
	}

	for {
		begin := a.next(offset)
		end := begin + length

		if end > a.pages {
			return 0, false
		}

		blocked := a.blocked(begin, end)
		if blocked < 0 {
			return begin, true
		}

		offset = blocked + 1
	}
}

// First free page at or after begin.
func (a *Arena) next(begin int) int {
	for i := begin; i < a.pages; i++ {
		if !a.used.test(i) {
			return i
		}
	}

	return a.pages
}

// Last used page in [begin, end), or -1 if the whole run is free.
func (a *Arena) blocked(begin, end int) int {
	for i := end - 1; i >= begin; i-- {
		if a.used.test(i) {
			return i
		}
	}

	return -1
}

func (a *Arena) header(page int) []byte {
	return a.region[page*a.size : (page+1)*a.size]
}

func (a *Arena) stamp(page, length int) {
	h := a.header(page)

	switch a.size {
	case 1:
		h[0] = byte(length)
	case 2:
		binary.LittleEndian.PutUint16(h, uint16(length))
	case 4:
		binary.LittleEndian.PutUint32(h, uint32(length))
	default:
		binary.LittleEndian.PutUint64(h, uint64(length))
	}
}

func (a *Arena) length(page int) int {
	h := a.header(page)

	switch a.size {
	case 1:
		return int(h[0])
	case 2:
		return int(binary.LittleEndian.Uint16(h))
	case 4:
		return int(binary.LittleEndian.Uint32(h))
	default:
		return int(binary.LittleEndian.Uint64(h))
	}
}
