// Released under an MIT license. See LICENSE.

package dlist

import (
	"testing"

	"github.com/michaelmacinnis/ferret/internal/common/interface/callable"
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/type/list"
	"github.com/michaelmacinnis/ferret/internal/common/type/num"
	"github.com/michaelmacinnis/ferret/internal/common/type/str"
)

type fixture struct {
	a, b, c    cell.Ref
	one, two   cell.Ref
	three, def cell.Ref
}

func setup(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		a:     str.New("a"),
		b:     str.New("b"),
		c:     str.New("c"),
		one:   num.Int(1),
		two:   num.Int(2),
		three: num.Int(3),
		def:   str.New("default"),
	}

	t.Cleanup(func() {
		cell.Release(&f.a, &f.b, &f.c, &f.one, &f.two, &f.three, &f.def)
	})

	return f
}

func TestLookup(t *testing.T) {
	f := setup(t)

	m := New(f.a, f.one, f.b, f.two)
	defer m.Release()

	v := Lookup(m, f.b, f.def)
	defer v.Release()

	if num.Value(v) != 2 {
		t.Fatalf("got %v", v)
	}

	k := str.New("b")
	defer k.Release()

	w := Lookup(m, k, f.def)
	defer w.Release()

	if num.Value(w) != 2 {
		t.Fatal("keys should be compared by value")
	}

	miss := Lookup(m, f.c, f.def)
	defer miss.Release()

	if !miss.Equal(f.def) {
		t.Fatalf("got %v", miss)
	}

	if n := Lookup(m, f.c, cell.Nil); !n.Nil() {
		t.Fatalf("got %v", n)
	}
}

func TestShadowing(t *testing.T) {
	f := setup(t)

	m := New(f.b, f.three)
	m1 := Assoc(m, f.a, f.one)
	m2 := Assoc(m1, f.a, f.two)

	defer cell.Release(&m, &m1, &m2)

	v := Lookup(m2, f.a, cell.Nil)
	defer v.Release()

	if num.Value(v) != 2 {
		t.Fatalf("got %v", v)
	}

	if n := list.Count(m2); n != list.Count(m)+2 {
		t.Fatalf("expected both bindings to persist, got %d", n)
	}

	old := Lookup(m1, f.a, cell.Nil)
	defer old.Release()

	if num.Value(old) != 1 {
		t.Fatal("assoc changed an existing dlist")
	}
}

func TestDissocRoundTrip(t *testing.T) {
	f := setup(t)

	m := New(f.a, f.one, f.b, f.two)
	m1 := Assoc(m, f.c, f.three)
	m2 := Dissoc(m1, f.c)

	defer cell.Release(&m, &m1, &m2)

	if v := Lookup(m2, f.c, cell.Nil); !v.Nil() {
		t.Fatalf("got %v", v)
	}

	if !m2.Equal(m) {
		t.Fatalf("%v should equal %v", m2, m)
	}
}

func TestDissocPreservesOrder(t *testing.T) {
	f := setup(t)

	m := New(f.a, f.one, f.b, f.two, f.c, f.three)
	d := Dissoc(m, f.b)

	defer cell.Release(&m, &d)

	want := New(f.a, f.one, f.c, f.three)
	defer want.Release()

	if !d.Equal(want) {
		t.Fatalf("got %v, want %v", d, want)
	}

	k := To(d).Keys()
	defer k.Release()

	if k.String() != "(a c)" {
		t.Fatalf("got %v", k)
	}

	missing := Dissoc(d, f.b)
	defer missing.Release()

	if missing.Get() != d.Get() {
		t.Fatal("dissoc of a missing key should return the same dlist")
	}
}

func TestDissocFirstMatchOnly(t *testing.T) {
	f := setup(t)

	m := New(f.a, f.two, f.a, f.one)
	d := Dissoc(m, f.a)

	defer cell.Release(&m, &d)

	v := Lookup(d, f.a, cell.Nil)
	defer v.Release()

	if num.Value(v) != 1 {
		t.Fatalf("expected the older binding to be visible, got %v", v)
	}
}

func TestSequence(t *testing.T) {
	f := setup(t)

	m := New(f.a, f.one, f.b, f.two)
	defer m.Release()

	if m.String() != "((a 1) (b 2))" {
		t.Fatalf("got %s", m)
	}

	e := New()
	defer e.Release()

	if list.Count(e) != 0 || e.String() != "()" {
		t.Fatalf("got %v", e)
	}

	r := list.Rest(m)
	defer r.Release()

	if !Is(r) || r.String() != "((b 2))" {
		t.Fatalf("got %v", r)
	}

	end := list.Rest(r)
	if !end.Is(cell.EmptySequence) {
		t.Fatalf("got %v", end)
	}

	p := list.New(f.c, f.three)
	c := list.Cons(p, m)

	defer cell.Release(&p, &c)

	if c.String() != "((c 3) (a 1) (b 2))" {
		t.Fatalf("got %v", c)
	}
}

func TestInvoke(t *testing.T) {
	f := setup(t)

	m := New(f.a, f.one)
	defer m.Release()

	v := callable.Run(m, f.a)
	defer v.Release()

	if num.Value(v) != 1 {
		t.Fatalf("got %v", v)
	}

	d := callable.Run(m, f.b, f.def)
	defer d.Release()

	if !d.Equal(f.def) {
		t.Fatalf("got %v", d)
	}
}

func TestValueEquality(t *testing.T) {
	f := setup(t)

	m := New(f.a, f.one)
	n := New(f.a, f.one)
	o := New(f.a, f.two)

	defer cell.Release(&m, &n, &o)

	if !m.Equal(n) || m.Equal(o) {
		t.Fail()
	}
}
