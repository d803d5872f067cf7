// Released under an MIT license. See LICENSE.

/*
Package config describes the target ferret runs on.

A target is read from TOML. The target key selects a preset and any other
keys override it:

	target = "embedded"

	[memory]
	pool-size = 4096
*/
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"

	"github.com/michaelmacinnis/ferret/internal/common/type/num"
	"github.com/michaelmacinnis/ferret/internal/memory"
	"github.com/michaelmacinnis/ferret/internal/system/console"
	"github.com/michaelmacinnis/ferret/internal/system/lock"
)

// ErrInvalid is returned for a configuration that cannot be applied.
var ErrInvalid = errors.New("invalid configuration") //nolint:gochecknoglobals

// T (config) is the configuration of a ferret target.
type T struct {
	Target  string  `toml:"target"`
	Console Console `toml:"console"`
	Log     Log     `toml:"log"`
	Memory  Memory  `toml:"memory"`
	Number  Number  `toml:"number"`
	Threads Threads `toml:"threads"`
}

// Console selects where printed output goes.
type Console struct {
	Output string `toml:"output"`
}

// Log configures logging. Zero logs notices and above, each step up adds
// a more detailed level and -4 or below disables logging.
type Log struct {
	Verbosity int `toml:"verbosity"`
}

// Memory configures the heap.
type Memory struct {
	Backend  string `toml:"backend"`
	Counting string `toml:"counting"`
	PoolSize int    `toml:"pool-size"`
	PageSize int    `toml:"page-size"`
}

// Number configures numeric comparison.
type Number struct {
	Epsilon float64 `toml:"epsilon"`
}

// Threads selects the threading model.
type Threads struct {
	Mode string `toml:"mode"`
}

//nolint:gochecknoglobals
var presets = map[string]T{
	"hosted": {
		Target:  "hosted",
		Console: Console{Output: "stdout"},
		Log:     Log{Verbosity: 0},
		Memory:  Memory{Backend: "system", Counting: "atomic"},
		Number:  Number{Epsilon: num.Epsilon},
		Threads: Threads{Mode: "platform"},
	},
	"embedded": {
		Target:  "embedded",
		Console: Console{Output: "stdout"},
		Log:     Log{Verbosity: -2},
		Memory: Memory{
			Backend:  "pool",
			Counting: "plain",
			PoolSize: 2048,
			PageSize: 8,
		},
		Number:  Number{Epsilon: num.Epsilon},
		Threads: Threads{Mode: "interrupts"},
	},
	"safe": {
		Target:  "safe",
		Console: Console{Output: "none"},
		Log:     Log{Verbosity: -4},
		Memory: Memory{
			Backend:  "pool",
			Counting: "plain",
			PoolSize: 2048,
			PageSize: 8,
		},
		Number:  Number{Epsilon: num.Epsilon},
		Threads: Threads{Mode: "none"},
	},
}

// Default returns the hosted configuration.
func Default() *T {
	c, _ := Preset("hosted")

	return c
}

// Preset returns the configuration for the target named name.
func Preset(name string) (*T, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown target %q", ErrInvalid, name)
	}

	return &p, nil
}

// Load reads the configuration in the file at path.
func Load(path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse reads a configuration from TOML. Keys that are not present keep
// the value from the selected target's preset.
func Parse(data []byte) (*T, error) {
	var sel struct {
		Target string `toml:"target"`
	}

	if err := toml.Unmarshal(data, &sel); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if sel.Target == "" {
		sel.Target = "hosted"
	}

	c, err := Preset(sel.Target)
	if err != nil {
		return nil, err
	}

	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}

	return c, c.Validate()
}

// Settings returns the heap settings described by c.
func (c *T) Settings() (memory.Settings, error) {
	var s memory.Settings

	b, err := memory.ParseBackend(c.Memory.Backend)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	n, err := memory.ParseCounting(c.Memory.Counting)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	m, err := lock.Parse(c.Threads.Mode)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return memory.Settings{
		Backend:  b,
		Counting: n,
		Threads:  m,
		PoolSize: c.Memory.PoolSize,
		PageSize: c.Memory.PageSize,
	}, nil
}

// Validate returns an error wrapping ErrInvalid if c cannot be applied.
func (c *T) Validate() error {
	s, err := c.Settings()
	if err != nil {
		return err
	}

	if (s.Backend == memory.Collector) != (s.Counting == memory.NoCount) {
		return fmt.Errorf(
			"%w: the collector backend requires counting to be none and only it may disable counting",
			ErrInvalid,
		)
	}

	if s.Counting == memory.Atomic && !s.Threads.Threaded() {
		return fmt.Errorf("%w: atomic counting requires threads", ErrInvalid)
	}

	if s.Counting == memory.Plain && s.Threads.Parallel() {
		return fmt.Errorf("%w: %s threads require atomic counting", ErrInvalid, s.Threads)
	}

	if s.Backend == memory.Pool && s.PoolSize <= 0 {
		return fmt.Errorf("%w: the pool backend requires a pool-size", ErrInvalid)
	}

	e := c.Number.Epsilon
	if e < 0 || math.IsNaN(e) || math.IsInf(e, 0) {
		return fmt.Errorf("%w: epsilon must be a non-negative number", ErrInvalid)
	}

	if !console.Valid(c.Console.Output) {
		return fmt.Errorf("%w: unknown console output %q", ErrInvalid, c.Console.Output)
	}

	return nil
}

// Apply makes c the running configuration. It returns the heap it
// installed as the active heap.
func (c *T) Apply() (*memory.Heap, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	commonlog.Configure(c.Log.Verbosity, nil)

	s, _ := c.Settings()

	h, err := memory.New(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := console.Use(c.Console.Output); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	num.SetEpsilon(c.Number.Epsilon)
	memory.Use(h)

	log().Infof("applied %s target", c.Target)

	return h, nil
}

func log() commonlog.Logger {
	return commonlog.GetLogger("ferret.config")
}
