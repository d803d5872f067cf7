// Released under an MIT license. See LICENSE.

/*
Ferret runs programs built on the ferret object runtime.

The command line arguments are captured as a list of strings. By default
ferret prints the first argument after the program name:

	ferret hello
	hello

With -i, each line read from stdin is echoed back as a string. On a
terminal lines are read with line editing and history.
The target is selected with -t or described in a TOML file passed with -c.

Ferret is released under an MIT-style license.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/michaelmacinnis/ferret/internal/common/interface/callable"
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/type/lambda"
	"github.com/michaelmacinnis/ferret/internal/common/type/list"
	"github.com/michaelmacinnis/ferret/internal/common/type/pair"
	"github.com/michaelmacinnis/ferret/internal/common/type/str"
	"github.com/michaelmacinnis/ferret/internal/memory"
	"github.com/michaelmacinnis/ferret/internal/system/config"
	"github.com/michaelmacinnis/ferret/internal/system/console"
	"github.com/michaelmacinnis/ferret/internal/system/options"
	"github.com/michaelmacinnis/ferret/internal/ui"
)

type echo struct {
	println cell.Ref
}

func (e *echo) Evaluate(line cell.Ref) {
	r := callable.Run(e.println, line)
	r.Release()
}

func main() {
	options.Parse()

	os.Exit(run())
}

// Captures the arguments as a list of strings, built back to front.
func capture(args []string) cell.Ref {
	l := cell.Nil

	for i := len(args) - 1; i >= 0; i-- {
		s := str.New(args[i])
		next := pair.Cons(s, l)
		cell.Release(&s, &l)
		l = next
	}

	return l
}

func configure() (*config.T, error) {
	switch {
	case options.Config() != "":
		return config.Load(options.Config())
	case options.Target() != "":
		return config.Preset(options.Target())
	}

	return config.Default(), nil
}

func newPrintln() cell.Ref {
	return lambda.New(func(args cell.Ref) cell.Ref {
		list.Each(args, func(i int64, v cell.Ref) bool {
			if i > 0 {
				console.Write(" ")
			}

			console.Print(v)

			return true
		})

		console.Write("\n")

		return cell.Nil
	})
}

// The program: print the first argument after the program name.
func program(args cell.Ref) {
	p := newPrintln()
	defer p.Release()

	first := list.Nth(args, 1)
	defer first.Release()

	r := callable.Run(p, first)
	r.Release()
}

func report(h *memory.Heap) {
	s := h.Stats()

	fmt.Fprintf(os.Stderr,
		"%s heap: %d allocations, %d frees, %d live, %d failures\n",
		h.Backend, s.Allocations, s.Frees, s.Live(), s.Failures,
	)

	if s.Pages > 0 {
		fmt.Fprintf(os.Stderr,
			"%d of %d pages of %d bytes in use\n",
			s.PagesUsed, s.Pages, s.PageSize,
		)
	}
}

func run() (status int) {
	c, err := configure()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ferret: %s\n", err)

		return 1
	}

	c.Log.Verbosity += options.Verbosity()

	h, err := c.Apply()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ferret: %s\n", err)

		return 1
	}

	defer func() {
		if options.Stats() {
			report(h)
		}

		if err := h.Close(); err != nil {
			log().Warningf("%s", err)
		}
	}()

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		err, ok := r.(error)
		if !ok || !errors.Is(err, memory.ErrExhausted) {
			panic(r)
		}

		log().Criticalf("%s", err)
		fmt.Fprintf(os.Stderr, "ferret: %s\n", err)

		status = 2
	}()

	args := capture(options.Args())
	defer args.Release()

	if !options.Interactive() {
		program(args)

		return 0
	}

	if err := interact(os.Stdin, options.Terminal()); err != nil {
		fmt.Fprintf(os.Stderr, "ferret: %s\n", err)

		return 1
	}

	return 0
}

// Echoes lines from the terminal, or from in when it is not a terminal.
func interact(in io.Reader, terminal bool) error {
	p := newPrintln()
	defer p.Release()

	e := &echo{println: p}

	if terminal {
		return ui.Run(e)
	}

	return ui.Scan(in, e)
}

func log() commonlog.Logger {
	return commonlog.GetLogger("ferret")
}
