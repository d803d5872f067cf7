// Released under an MIT license. See LICENSE.

// Package options parses ferret's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	args        []string
	config      string
	interactive bool
	stats       bool
	target      string
	terminal    bool
	verbosity   int
	usage       = `ferret

Usage:
  ferret [-v...] [-c CONFIG | -t TARGET] [--stats] [ARGUMENTS...]
  ferret [-v...] [-c CONFIG | -t TARGET] [--stats] -i
  ferret -h

Arguments:
  ARGUMENTS  Passed to the program as a list of strings.

Options:
  -c, --config=CONFIG  Read the target configuration from CONFIG.
  -t, --target=TARGET  Use a preset target: hosted, embedded, or safe.
  -i, --interactive    Echo each line read from stdin as a string.
  -s, --stats          Report heap use on exit.
  -v, --verbose        Increase logging verbosity.
  -h, --help           Display this help.

Interactive mode prompts with line editing and history when stdin is a
TTY. Otherwise lines are read from stdin until end of input.
`
)

// Args returns the program name followed by the arguments.
func Args() []string {
	return args
}

// Config returns the path to the configuration file, if any.
func Config() string {
	return config
}

// Interactive returns true if ferret should echo lines from stdin.
func Interactive() bool {
	return interactive
}

// Parse parses the command line in os.Args.
func Parse() {
	ParseArgs(os.Args[1:])
}

// ParseArgs parses argv, the command line without the program name.
func ParseArgs(argv []string) {
	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	opts, err := parser.ParseArgs(usage, argv, "")
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	config, _ = opts.String("--config")
	target, _ = opts.String("--target")
	stats, _ = opts.Bool("--stats")

	verbosity, _ = opts["--verbose"].(int)

	rest, _ := opts["ARGUMENTS"].([]string)
	args = append([]string{os.Args[0]}, rest...)

	interactive, _ = opts.Bool("--interactive")
	terminal = isatty.IsTerminal(os.Stdin.Fd()) ||
		isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Stats returns true if heap use should be reported.
func Stats() bool {
	return stats
}

// Terminal returns true if stdin is a terminal.
func Terminal() bool {
	return terminal
}

// Target returns the name of the preset target, if any.
func Target() string {
	return target
}

// Verbosity returns the number of times -v was passed.
func Verbosity() int {
	return verbosity
}
