//go:build !windows

package shell

import (
	"os"
	"path/filepath"
)

var (
	defaultConfigHome = homePath(".config")
	defaultStateHome  = homePath(".local", "state")
)

func homePath(elems ...string) func() (string, error) {
	return func() (string, error) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(append([]string{home}, elems...)...), nil
	}
}
