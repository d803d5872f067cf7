// Released under an MIT license. See LICENSE.

// Package integer converts a ferret cell to an int64 value, if possible.
package integer

import (
	"math"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/type/num"
)

// Value returns the int64 value for a cell, if possible.
func Value(c cell.Ref) int64 {
	if !num.Is(c) {
		if c.Nil() {
			panic("nil cannot be converted to an integer value")
		}

		panic(c.Get().Name() + " cannot be converted to an integer value")
	}

	f := num.Value(c)

	i := math.Round(f)
	if math.Abs(f-i) >= num.GetEpsilon() || i > math.MaxInt64 || i < math.MinInt64 {
		panic(c.String() + " does not have an integer value")
	}

	return int64(i)
}
