package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/origadmin/enumfrom/internal/model"
)

// Color modes for diagnostics.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings of one generator run. Fields are filled from the
// defaults, then the YAML file, then explicitly set command-line flags.
type Config struct {
	// Output is the file name written into every package directory.
	Output string `yaml:"output"`
	// Tags are extra build tags used while loading packages.
	Tags []string `yaml:"tags"`
	// StrInner is the default str policy for single-inner variants.
	StrInner model.StrPolicy `yaml:"str_inner"`
	// Workers bounds the packages analyzed concurrently.
	Workers int `yaml:"workers"`
	// Color selects colored diagnostics: auto, always or never.
	Color string `yaml:"color"`
}

// NewDefaultConfig creates a default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Output:   DefaultOutput,
		StrInner: model.StrParse,
		Workers:  runtime.GOMAXPROCS(0),
		Color:    ColorAuto,
	}
}

// LoadFile decodes the YAML file at path over cfg. Unknown keys are rejected.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return Decode(data, cfg)
}

// Decode decodes YAML data over cfg.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	var errs error
	if c.Output == "" {
		errs = errors.Join(errs, errors.New("output must not be empty"))
	}
	if !c.StrInner.Valid() {
		errs = errors.Join(errs, fmt.Errorf("str_inner must be %q or %q, got %q", model.StrParse, model.StrZero, c.StrInner))
	}
	if c.Workers < 1 {
		errs = errors.Join(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = errors.Join(errs, fmt.Errorf("color must be auto, always or never, got %q", c.Color))
	}
	return errs
}
