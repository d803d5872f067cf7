// Released under an MIT license. See LICENSE.

package num

import (
	"testing"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
)

func TestEpsilonEquality(t *testing.T) {
	a := New(0.1)
	b := New(0.2)
	c := Add(a, b)
	d := New(0.3)

	defer cell.Release(&a, &b, &c, &d)

	if !c.Equal(d) {
		t.Fatalf("%v should equal %v", c, d)
	}

	e := New(0.31)
	defer e.Release()

	if c.Equal(e) {
		t.Fatalf("%v should not equal %v", c, e)
	}
}

func TestSetEpsilon(t *testing.T) {
	prev := GetEpsilon()
	t.Cleanup(func() { SetEpsilon(prev) })

	a := New(1)
	b := New(1.05)

	defer cell.Release(&a, &b)

	if a.Equal(b) {
		t.Fatal("numbers should differ with the default tolerance")
	}

	SetEpsilon(0.1)

	if !a.Equal(b) {
		t.Fatal("numbers should be equal with a wider tolerance")
	}
}

func TestZeroEpsilonIsExact(t *testing.T) {
	prev := GetEpsilon()
	t.Cleanup(func() { SetEpsilon(prev) })

	SetEpsilon(0)

	a := Int(1)
	b := Int(1)
	c := New(1.0000001)

	defer cell.Release(&a, &b, &c)

	if !a.Equal(b) {
		t.Fatal("equal numbers should compare equal")
	}

	if a.Equal(c) {
		t.Fatal("numbers should differ with a zero tolerance")
	}
}

func TestArithmetic(t *testing.T) {
	a := Int(6)
	b := Int(3)

	defer cell.Release(&a, &b)

	tests := []struct {
		op   func(a, b cell.Ref) cell.Ref
		want float64
	}{
		{Add, 9},
		{Sub, 3},
		{Mul, 18},
		{Div, 2},
	}

	for i, tt := range tests {
		r := tt.op(a, b)
		if Value(r) != tt.want {
			t.Errorf("%d: got %v, want %v", i, r, tt.want)
		}

		r.Release()
	}
}

func TestComparisons(t *testing.T) {
	a := Int(1)
	b := Int(2)

	defer cell.Release(&a, &b)

	if !Less(a, b).Bool() || Less(b, a).Bool() {
		t.Error("less")
	}

	if !Greater(b, a).Bool() || Greater(a, b).Bool() {
		t.Error("greater")
	}

	if !LessEqual(a, a).Bool() || !GreaterEqual(a, a).Bool() {
		t.Error("equal comparisons")
	}
}

func TestString(t *testing.T) {
	n := Num("2.5")
	defer n.Release()

	if n.String() != "2.5" {
		t.Fatalf("got %s", n)
	}
}

func TestValueNotNumber(t *testing.T) {
	defer func() {
		if r := recover(); r != "nil is not a number" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()

	Value(cell.Nil)
}
