// Released under an MIT license. See LICENSE.

package console

import (
	"io"
	"strings"
	"testing"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/type/list"
	"github.com/michaelmacinnis/ferret/internal/common/type/num"
	"github.com/michaelmacinnis/ferret/internal/common/type/str"
)

func capture(t *testing.T) *strings.Builder {
	t.Helper()

	b := &strings.Builder{}
	prev := SetOutput(b)

	t.Cleanup(func() { SetOutput(prev) })

	return b
}

func TestPrintln(t *testing.T) {
	b := capture(t)

	s := str.New("hello")
	n := num.Int(1)
	l := list.New(s, n)

	defer cell.Release(&s, &n, &l)

	Println(s)
	Println(l, cell.Nil)

	if got := b.String(); got != "hello\n(hello 1)nil\n" {
		t.Fatalf("got %q", got)
	}
}

func TestUse(t *testing.T) {
	prev := SetOutput(io.Discard)
	t.Cleanup(func() { SetOutput(prev) })

	if err := Use("none"); err != nil {
		t.Fatal(err)
	}

	if err := Use("printer"); err == nil {
		t.Fatal("expected an error for an unknown output")
	}

	if !Valid("stdout") || Valid("uart") {
		t.Fail()
	}
}
