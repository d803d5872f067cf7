// Released under an MIT license. See LICENSE.

// Package history keeps the lines entered in interactive mode between runs.
// The file is named by FERRET_HISTORY or, when that is unset, lives in a
// platform specific location.
package history

import (
	"io"
	"os"
)

// Variable names the environment variable that overrides the history path.
const Variable = "FERRET_HISTORY"

// Path returns the location of the history file.
func Path() (string, error) {
	if p := os.Getenv(Variable); p != "" {
		return p, nil
	}

	return location()
}

// Load opens the history file and hands it to read.
func Load(read func(r io.Reader) (int, error)) error {
	p, err := Path()
	if err != nil {
		return err
	}

	f, err := os.Open(p)
	if err != nil {
		return err
	}

	defer f.Close()

	_, err = read(f)

	return err
}

// Save truncates the history file and hands it to write.
func Save(write func(w io.Writer) (int, error)) error {
	p, err := Path()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(p, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	if _, err = write(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
