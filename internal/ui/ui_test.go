// Released under an MIT license. See LICENSE.

package ui

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/type/str"
)

type recorder []string

func (r *recorder) Evaluate(line cell.Ref) {
	if !str.Is(line) {
		panic("expected a string")
	}

	*r = append(*r, str.Text(line))
}

func TestScan(t *testing.T) {
	var r recorder

	err := Scan(strings.NewReader("hello\n\\x41b\nlast"), &r)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"hello", "Ab", "last"}
	if len(r) != len(want) {
		t.Fatalf("got %q", r)
	}

	for i := range want {
		if r[i] != want[i] {
			t.Errorf("%d: got %q, want %q", i, r[i], want[i])
		}
	}
}
