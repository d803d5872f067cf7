// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to ferret's callables.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/type/list"
	"github.com/michaelmacinnis/ferret/internal/common/type/pair"
)

// Variadic returns the first max arguments in actual and the remaining
// arguments. It panics if fewer than min arguments were passed. The caller
// owns every returned reference.
func Variadic(actual cell.Ref, min, max int) ([]cell.Ref, cell.Ref) {
	expected := make([]cell.Ref, 0, max)

	actual = actual.Copy()

	for i := 0; i < max; i++ {
		if pair.End(actual) {
			if i < min {
				Release(expected)
				actual.Release()

				s := Count(min, "argument", "s")
				panic(fmt.Sprintf("expected %s, passed %d", s, i))
			}

			break
		}

		expected = append(expected, pair.First(actual))

		next := pair.Rest(actual)
		actual.Release()
		actual = next
	}

	return expected, actual
}

// Fixed returns between min and max arguments from actual. It panics if
// more or fewer arguments were passed. The caller owns every returned
// reference.
func Fixed(actual cell.Ref, min, max int) []cell.Ref {
	expected, rest := Variadic(actual, min, max)
	defer rest.Release()

	if !pair.End(rest) {
		Release(expected)

		s := Count(max, "argument", "s")
		n := list.Count(actual)

		panic(fmt.Sprintf("expected %s, passed %d", s, n))
	}

	return expected
}

// Count returns n followed by label, pluralized with p.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Release releases every reference in args.
func Release(args []cell.Ref) {
	for i := range args {
		args[i].Release()
	}
}
