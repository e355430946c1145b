// Package config loads the lintconfig CLI's own bootstrap settings: where
// to resolve from, how verbosely to log, and how many ancestor directories
// to probe. Unlike the configuration bodies configfactory resolves (which
// come from arbitrary host-authored .eslintrc files with extends/overrides
// to normalize), this is one small YAML file read directly into one
// struct, so it gets a direct loader rather than a generic
// parser/fetcher/provider abstraction.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Settings is the CLI's own bootstrap configuration.
type Settings struct {
	CWD          string `yaml:"cwd"`
	LogLevel     string `yaml:"log_level"`
	MaxProbeDirs int    `yaml:"max_probe_dirs"`
}

func (s *Settings) setDefaults() {
	if s.CWD == "" {
		s.CWD = "."
	}

	if s.LogLevel == "" {
		s.LogLevel = "info"
	}

	if s.MaxProbeDirs == 0 {
		s.MaxProbeDirs = 20
	}
}

func (s *Settings) validate() error {
	if s.MaxProbeDirs < 1 {
		return errors.New("config: max_probe_dirs must be positive")
	}

	return nil
}

// Default returns a Settings value with every field defaulted, for callers
// that treat a settings file as optional.
func Default() *Settings {
	s := &Settings{}
	s.setDefaults()

	return s
}

// Load reads path as YAML into a Settings value, applying defaults for any
// zero-valued field and validating the result.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	settings := &Settings{}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	settings.setDefaults()

	if err := settings.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return settings, nil
}

// NewLoader returns an Fx-friendly constructor that loads Settings from
// path when invoked, the same deferred-construction shape the teacher's
// file fetcher used for wiring a fixed path into an Fx module.
func NewLoader(path string) func() (*Settings, error) {
	return func() (*Settings, error) {
		return Load(path)
	}
}
