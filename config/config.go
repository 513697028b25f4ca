// Package config holds the interpreter settings.  Settings come from an
// optional YAML file; anything the file leaves out keeps its default, and the
// command line has the final word.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Overflow selects what happens when a subroutine call would exceed the
// maximum call depth
type Overflow string

const (
	// OverflowDrop accepts the call but forgets its return address
	OverflowDrop Overflow = "drop"
	// OverflowError makes the call a fatal error
	OverflowError Overflow = "error"
)

type Config struct {
	MaxDepth  int      `yaml:"max_depth"`
	Overflow  Overflow `yaml:"overflow"`
	Strict    bool     `yaml:"strict"`
	Prompt    string   `yaml:"prompt"`
	Shell     string   `yaml:"shell"`
	Seed      uint64   `yaml:"seed"`
	LogLevel  string   `yaml:"log_level"`
	Extension string   `yaml:"extension"`
}

func Default() Config {
	return Config{
		MaxDepth:  20,
		Overflow:  OverflowDrop,
		Strict:    true,
		Prompt:    "> ",
		Shell:     "/bin/sh",
		LogLevel:  "error",
		Extension: ".p",
	}
}

// Load reads the configuration file at path from fs.  An empty path or a
// file that does not exist yields the defaults.
func Load(fs afero.Fs, path string) (Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}

	fp, err := fs.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return conf, nil
	case err != nil:
		return conf, errors.Wrapf(err, "failed to open %s", path)
	}
	defer fp.Close()

	dec := yaml.NewDecoder(fp)
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		return conf, errors.Wrapf(err, "failed to parse %s", path)
	}
	return conf, conf.Validate()
}

func (c Config) Validate() error {
	if c.MaxDepth < 1 {
		return InvalidError{"max_depth", c.MaxDepth}
	}
	switch c.Overflow {
	case OverflowDrop, OverflowError:
	default:
		return InvalidError{"overflow", c.Overflow}
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return InvalidError{"log_level", c.LogLevel}
	}
	return nil
}
