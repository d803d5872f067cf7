// Released under an MIT license. See LICENSE.

package memory

// bitset records page occupancy, one bit per page.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) set(i int) {
	b[i/64] |= 1 << (uint(i) % 64)
}

func (b bitset) reset(i int) {
	b[i/64] &^= 1 << (uint(i) % 64)
}

func (b bitset) test(i int) bool {
	return b[i/64]&(1<<(uint(i)%64)) != 0
}
