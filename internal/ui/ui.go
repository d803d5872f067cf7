// Released under an MIT license. See LICENSE.

// Package ui reads lines for ferret's interactive mode.
package ui

import (
	"bufio"
	"errors"
	"io"

	"github.com/michaelmacinnis/adapted"
	"github.com/peterh/liner"
	"github.com/tliron/commonlog"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/type/str"
	"github.com/michaelmacinnis/ferret/internal/system/history"
)

// Evaluator is the interface for things that want to process lines. Each
// line is passed as a string. The line is borrowed.
type Evaluator interface {
	Evaluate(line cell.Ref)
}

// Run prompts for lines on the terminal until end of input.
func Run(e Evaluator) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	if err := history.Load(cli.ReadHistory); err != nil {
		log().Infof("no history: %s", err)
	}

	defer func() {
		if err := history.Save(cli.WriteHistory); err != nil {
			log().Warningf("cannot save history: %s", err)
		}
	}()

	for {
		line, err := cli.Prompt("> ")

		switch {
		case err == nil:
			cli.AppendHistory(line)
			evaluate(e, line)
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}
	}
}

// Scan reads lines from r until end of input.
func Scan(r io.Reader, e Evaluator) error {
	s := bufio.NewScanner(r)

	for s.Scan() {
		evaluate(e, s.Text())
	}

	return s.Err()
}

func evaluate(e Evaluator, line string) {
	text, err := adapted.ActualBytes(line)
	if err != nil {
		log().Warningf("%s: %q", err, line)

		text = line
	}

	s := str.New(text)
	defer s.Release()

	e.Evaluate(s)
}

func log() commonlog.Logger {
	return commonlog.GetLogger("ferret.ui")
}
