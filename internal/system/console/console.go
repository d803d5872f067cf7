// Released under an MIT license. See LICENSE.

// Package console is ferret's character output boundary. Everything ferret
// prints goes through the writer installed here.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
)

//nolint:gochecknoglobals
var (
	mu     sync.Mutex
	output io.Writer = os.Stdout

	outputs = map[string]func() io.Writer{
		"none":   func() io.Writer { return io.Discard },
		"stderr": func() io.Writer { return os.Stderr },
		"stdout": func() io.Writer { return os.Stdout },
	}
)

// Valid returns true if name is a known output.
func Valid(name string) bool {
	_, ok := outputs[name]

	return ok
}

// Use directs output to the writer named by name: stdout, stderr, or none.
func Use(name string) error {
	w, ok := outputs[name]
	if !ok {
		return fmt.Errorf("unknown console output %q", name)
	}

	SetOutput(w())

	return nil
}

// SetOutput directs output to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()

	prev := output
	output = w

	return prev
}

// Print writes the text representation of each value.
func Print(values ...cell.Ref) {
	mu.Lock()
	defer mu.Unlock()

	for _, v := range values {
		_, _ = io.WriteString(output, v.String())
	}
}

// Println writes the text representation of each value followed by a newline.
func Println(values ...cell.Ref) {
	Print(values...)
	Write("\n")
}

// Write writes s.
func Write(s string) {
	mu.Lock()
	defer mu.Unlock()

	_, _ = io.WriteString(output, s)
}
