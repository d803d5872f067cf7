// Released under an MIT license. See LICENSE.

package list

import (
	"testing"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/type/num"
)

func numbers(ns ...int) cell.Ref {
	s := make([]cell.Ref, len(ns))
	for i, n := range ns {
		s[i] = num.Int(n)
	}

	l := New(s...)

	for i := range s {
		s[i].Release()
	}

	return l
}

func TestNew(t *testing.T) {
	l := numbers(1, 2, 3)
	defer l.Release()

	if l.String() != "(1 2 3)" {
		t.Fatalf("got %s", l)
	}

	if e := New(); !e.Is(cell.EmptySequence) {
		t.Fatalf("got %v", e)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		l    cell.Ref
		want int64
	}{
		{cell.Nil, 0},
		{New(), 0},
		{numbers(1), 1},
		{numbers(1, 2, 3, 4), 4},
	}

	for _, tt := range tests {
		if got := Count(tt.l); got != tt.want {
			t.Errorf("count of %v: got %d, want %d", tt.l, got, tt.want)
		}

		tt.l.Release()
	}
}

func TestNth(t *testing.T) {
	l := numbers(10, 20, 30)
	defer l.Release()

	for i, want := range []float64{10, 20, 30} {
		v := Nth(l, int64(i))
		if num.Value(v) != want {
			t.Errorf("%d: got %v, want %v", i, v, want)
		}

		v.Release()
	}

	if v := Nth(l, 3); !v.Nil() {
		t.Errorf("expected nil past the end, got %v", v)
	}

	if v := Nth(l, 10); !v.Nil() {
		t.Errorf("expected nil well past the end, got %v", v)
	}

	r := NthRest(l, 1)
	defer r.Release()

	if r.String() != "(20 30)" {
		t.Errorf("got %s", r)
	}
}

func TestReverse(t *testing.T) {
	l := numbers(1, 2, 3)
	r := Reverse(l)

	defer cell.Release(&l, &r)

	if r.String() != "(3 2 1)" {
		t.Fatalf("got %s", r)
	}
}

func TestSlice(t *testing.T) {
	l := numbers(1, 2, 3)
	defer l.Release()

	s := Slice(l)
	if len(s) != 3 {
		t.Fatalf("got %d elements", len(s))
	}

	m := FromSlice(s)
	defer m.Release()

	for i := range s {
		s[i].Release()
	}

	if !m.Equal(l) {
		t.Fatalf("%v != %v", m, l)
	}
}

func TestEachStops(t *testing.T) {
	l := numbers(1, 2, 3, 4)
	defer l.Release()

	var seen int64

	Each(l, func(i int64, _ cell.Ref) bool {
		seen = i + 1

		return i < 1
	})

	if seen != 2 {
		t.Fatalf("expected to stop after 2 elements, saw %d", seen)
	}
}

func TestIsSeq(t *testing.T) {
	l := numbers(1)
	n := num.Int(1)

	defer cell.Release(&l, &n)

	if !IsSeq(l) || !IsSeq(New()) || IsSeq(n) || IsSeq(cell.Nil) {
		t.Fail()
	}
}
