// Released under an MIT license. See LICENSE.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/type/list"
	"github.com/michaelmacinnis/ferret/internal/common/type/num"
	"github.com/michaelmacinnis/ferret/internal/memory"
	"github.com/michaelmacinnis/ferret/internal/system/console"
	"github.com/michaelmacinnis/ferret/internal/system/lock"
)

func restore(t *testing.T) {
	t.Helper()

	heap := memory.Active()
	epsilon := num.GetEpsilon()
	output := console.SetOutput(os.Stdout)

	t.Cleanup(func() {
		memory.Use(heap)
		num.SetEpsilon(epsilon)
		console.SetOutput(output)
	})
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"hosted", "embedded", "safe"} {
		c, err := Preset(name)
		if err != nil {
			t.Fatal(err)
		}

		if err = c.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	if _, err := Preset("mainframe"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseOverridesPreset(t *testing.T) {
	c, err := Parse([]byte(`
target = "embedded"

[memory]
pool-size = 4096
`))
	if err != nil {
		t.Fatal(err)
	}

	if c.Memory.Backend != "pool" || c.Memory.PoolSize != 4096 {
		t.Fatalf("got %+v", c.Memory)
	}

	if c.Threads.Mode != "interrupts" {
		t.Fatalf("expected the preset's threads, got %q", c.Threads.Mode)
	}
}

func TestParseDefaultsToHosted(t *testing.T) {
	c, err := Parse([]byte(`[number]
epsilon = 0.5
`))
	if err != nil {
		t.Fatal(err)
	}

	if c.Target != "hosted" || c.Number.Epsilon != 0.5 {
		t.Fatalf("got %+v", c)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		`target = "hosted"
[memory]
backend = "collector"
counting = "atomic"`,
		`target = "safe"
[memory]
counting = "atomic"`,
		`target = "hosted"
[memory]
backend = "pool"`,
		`[number]
epsilon = -1.0`,
		`[console]
output = "uart"`,
		`[memory]
colour = "blue"`,
		`[threads]
mode = "green"`,
		`target = "hosted"
[memory]
counting = "plain"`,
	}

	for i, tt := range tests {
		if _, err := Parse([]byte(tt)); !errors.Is(err, ErrInvalid) {
			t.Errorf("%d: expected an invalid configuration, got %v", i, err)
		}
	}

	if _, err := Parse([]byte(`target = `)); err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("expected a parse error, got %v", err)
	}
}

func TestZeroEpsilon(t *testing.T) {
	c, err := Parse([]byte(`target = "safe"
[number]
epsilon = 0.0`))
	if err != nil {
		t.Fatal(err)
	}

	if c.Number.Epsilon != 0 {
		t.Fatalf("got %v", c.Number.Epsilon)
	}

	prev := num.GetEpsilon()
	num.SetEpsilon(c.Number.Epsilon)

	defer num.SetEpsilon(prev)

	a := num.Int(1)
	b := num.Int(1)

	defer cell.Release(&a, &b)

	if !a.Equal(b) {
		t.Fatal("equal numbers should compare equal with a zero tolerance")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ferret.toml")

	err := os.WriteFile(path, []byte(`target = "safe"`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if c.Console.Output != "none" {
		t.Fatalf("got %+v", c.Console)
	}

	if _, err = Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestApplyEmbedded(t *testing.T) {
	restore(t)

	c, _ := Preset("embedded")
	c.Number.Epsilon = 0.25

	h, err := c.Apply()
	if err != nil {
		t.Fatal(err)
	}

	defer h.Close()

	if memory.Active() != h || h.Backend != memory.Pool || h.Threads != lock.Interrupts {
		t.Fatalf("embedded heap not installed: %+v", h)
	}

	if num.GetEpsilon() != 0.25 {
		t.Fatalf("got epsilon %v", num.GetEpsilon())
	}

	a, b := num.Int(1), num.Int(2)
	l := list.New(a, b)

	if h.Stats().Live() == 0 {
		t.Fatal("objects should be allocated from the pool")
	}

	l.Release()
	a.Release()
	b.Release()

	if live := h.Stats().Live(); live != 0 {
		t.Fatalf("expected every allocation to be freed, %d live", live)
	}
}

func TestApplyInvalid(t *testing.T) {
	restore(t)

	c := Default()
	c.Memory.Counting = "none"

	prev := memory.Active()

	if _, err := c.Apply(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("unexpected error: %v", err)
	}

	if memory.Active() != prev {
		t.Fatal("an invalid configuration should not replace the heap")
	}
}
