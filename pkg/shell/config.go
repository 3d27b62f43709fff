package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the content of the configuration file, rc.yaml.
type Config struct {
	// Prompt shown in the interactive mode when stdin is a terminal.
	Prompt string `yaml:"prompt"`
	// Whether to tolerate unbalanced parentheses, like the -lenient flag.
	LenientParens bool `yaml:"lenient-parens"`
	// Whether to record the interactive history.
	History bool `yaml:"history"`
	// Path to the history database.
	DB string `yaml:"db"`
}

func defaultConfig() *Config {
	return &Config{Prompt: "> ", History: true}
}

// LoadConfig reads the configuration file. Fields missing from the file keep
// their default values. Unknown fields are an error. An error satisfying
// os.IsNotExist is returned as is if the file does not exist.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := defaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot load %s: %w", path, err)
	}
	logger.Println("loaded config from", path)
	return cfg, nil
}
