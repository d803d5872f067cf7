// Released under an MIT license. See LICENSE.

package value

import (
	"testing"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
)

func TestGet(t *testing.T) {
	v := New([]int{1, 2, 3})
	defer v.Release()

	if s := Get[[]int](v); len(s) != 3 {
		t.Fatalf("got %v", s)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	Get[string](v)
}

func TestIdentity(t *testing.T) {
	a, b := New(1), New(1)
	defer cell.Release(&a, &b)

	if a.Equal(b) || !a.Equal(a) {
		t.Fail()
	}
}
