// Released under an MIT license. See LICENSE.

//go:build unix

package history

import (
	"os"
	"path/filepath"
)

func location() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".ferret_history"), nil
}
