// Released under an MIT license. See LICENSE.

// Package config loads lox's settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// T (config) holds the settings for an interactive lox session.
type T struct {
	History string `yaml:"history"` // History file. Empty disables history.
	Prompt  string `yaml:"prompt"`
	Trace   bool   `yaml:"trace"` // Log evaluator activity.
}

// Default returns the settings used when there is no settings file.
func Default() *T {
	c := &T{Prompt: "> "}

	if home, err := os.UserHomeDir(); err == nil {
		c.History = filepath.Join(home, ".lox_history")
	}

	return c
}

// Path returns the default location of the settings file.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".lox.yaml")
}

// Decode reads settings from r. Settings not mentioned keep their
// default values. Unknown settings are an error.
func Decode(r io.Reader) (*T, error) {
	c := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	return c, nil
}

// Load reads settings from the file at path. If path is empty the default
// location is used and, if there is no file there, the defaults are
// returned.
func Load(path string) (*T, error) {
	explicit := path != ""
	if !explicit {
		path = Path()
		if path == "" {
			return Default(), nil
		}
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	c, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}

	return c, nil
}
