// Released under an MIT license. See LICENSE.

package lazy

import (
	"testing"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/type/lambda"
	"github.com/michaelmacinnis/ferret/internal/common/type/list"
	"github.com/michaelmacinnis/ferret/internal/common/type/num"
	"github.com/michaelmacinnis/ferret/internal/common/type/pair"
)

// count returns a lazy sequence of the integers from i up to but not
// including n. Calls counts the number of times a producer runs.
func count(i, n int, calls *int) cell.Ref {
	thunk := lambda.New(func(cell.Ref) cell.Ref {
		*calls++

		if i >= n {
			return cell.Nil
		}

		h := num.Int(i)
		t := count(i+1, n, calls)

		defer cell.Release(&h, &t)

		return pair.Cons(h, t)
	})
	defer thunk.Release()

	return New(thunk)
}

func TestSequence(t *testing.T) {
	calls := 0

	l := count(0, 3, &calls)
	defer l.Release()

	if l.String() != "(0 1 2)" {
		t.Fatalf("got %s", l)
	}

	if list.Count(l) != 3 {
		t.Fatalf("got %d elements", list.Count(l))
	}

	e := list.New()

	for i, want := range []float64{0, 1, 2} {
		v := list.Nth(l, int64(i))
		if num.Value(v) != want {
			t.Errorf("%d: got %v, want %v", i, v, want)
		}

		v.Release()
	}

	empty := count(5, 5, &calls)
	defer empty.Release()

	if !empty.Equal(e) || list.Count(empty) != 0 {
		t.Fatalf("expected an empty sequence, got %v", empty)
	}
}

func TestEqualsEager(t *testing.T) {
	calls := 0

	l := count(1, 3, &calls)

	a, b := num.Int(1), num.Int(2)
	e := list.New(a, b)

	defer cell.Release(&l, &a, &b, &e)

	if !l.Equal(e) || !e.Equal(l) {
		t.Fatalf("%v should equal %v", l, e)
	}

	s := list.Rest(e)
	defer s.Release()

	if l.Equal(s) {
		t.Fatalf("%v should not equal %v", l, s)
	}
}

func TestHeadMemoized(t *testing.T) {
	calls := 0

	l := count(0, 2, &calls)
	defer l.Release()

	for i := 0; i < 3; i++ {
		f := list.First(l)
		f.Release()
	}

	if calls != 1 {
		t.Fatalf("expected the producer to run once for the head, ran %d times", calls)
	}
}

func TestRestReevaluates(t *testing.T) {
	calls, tail := 0, 0

	thunk := lambda.New(func(cell.Ref) cell.Ref {
		calls++

		h := num.Int(0)
		r := count(1, 2, &tail)

		defer cell.Release(&h, &r)

		return pair.Cons(h, r)
	})
	l := New(thunk)

	defer cell.Release(&thunk, &l)

	r1 := list.Rest(l)
	r2 := list.Rest(l)

	defer cell.Release(&r1, &r2)

	if calls != 2 {
		t.Fatalf("expected the producer to run for each rest, ran %d times", calls)
	}

	if r1.Get() == r2.Get() || !r1.Equal(r2) {
		t.Fatal("each rest should be a new but equal sequence")
	}

	if r1.String() != "(1)" {
		t.Fatalf("got %v", r1)
	}
}

func TestCons(t *testing.T) {
	calls := 0

	l := count(1, 3, &calls)
	z := num.Int(0)
	c := list.Cons(z, l)

	defer cell.Release(&l, &z, &c)

	if !Is(c) || c.String() != "(0 1 2)" {
		t.Fatalf("got %v", c)
	}

	m := num.Int(-1)
	d := list.Cons(m, c)

	defer cell.Release(&m, &d)

	if d.String() != "(-1 0 1 2)" {
		t.Fatalf("got %v", d)
	}

	if l.String() != "(1 2)" {
		t.Fatalf("cons changed %v", l)
	}
}
