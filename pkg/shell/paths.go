package shell

import (
	"os"
	"path/filepath"

	"src.calc.sh/pkg/env"
)

// rcPath returns the path of the configuration file, rc.yaml.
func rcPath() (string, error) {
	return xdgPath(env.XDG_CONFIG_HOME, defaultConfigHome, "rc.yaml")
}

// dbPath returns the path of the history database, creating its directory if
// needed.
func dbPath() (string, error) {
	p, err := xdgPath(env.XDG_STATE_HOME, defaultStateHome, "db.bolt")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", err
	}
	return p, nil
}

// Returns $envName/calc/name if the environment variable is set, and uses the
// default directory otherwise.
func xdgPath(envName string, defaultDir func() (string, error), name string) (string, error) {
	dir := os.Getenv(envName)
	if dir == "" {
		var err error
		dir, err = defaultDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, "calc", name), nil
}
