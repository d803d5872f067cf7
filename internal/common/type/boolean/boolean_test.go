// Released under an MIT license. See LICENSE.

package boolean

import (
	"testing"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/interface/truth"
)

func TestCanonical(t *testing.T) {
	if Bool(true).Get() != True.Get() || Bool(false).Get() != False.Get() {
		t.Fatal("booleans should be canonical")
	}

	if !True.Equal(New("true")) || True.Equal(False) {
		t.Fail()
	}

	if True.Refs() != 0 {
		t.Fatal("booleans are not counted")
	}

	r := True.Copy()
	r.Release()

	if True.Nil() {
		t.Fatal("releasing a copy should not affect the singleton")
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		c    cell.Ref
		want bool
	}{
		{cell.Nil, false},
		{False, false},
		{True, true},
	}

	for _, tt := range tests {
		if got := truth.Value(tt.c); got != tt.want {
			t.Errorf("truth of %v: got %v, want %v", tt.c, got, tt.want)
		}

		if got := tt.c.Bool(); got != tt.want {
			t.Errorf("Bool of %v: got %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestNewInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	New("maybe")
}
