// Package config loads the settings for a resbp training run.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/kkoreilly/resbp"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	InputSize  int    `yaml:"input_size"`
	HiddenSize int    `yaml:"hidden_size"`
	Seed       uint64 `yaml:"seed"`
	Epochs     int    `yaml:"epochs"`
	Data       string `yaml:"data"`
	LogEvery   int    `yaml:"log_every"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	InputSize  int
	HiddenSize int
	Seed       uint64
	SeedSet    bool // Seed was given explicitly, so a zero Seed still overrides
	Epochs     int
	Data       string
	LogEvery   int
}

// Default returns the config used when no file is given.
func Default() *Config {
	return &Config{
		InputSize:  resbp.DefaultInputSize,
		HiddenSize: resbp.DefaultHiddenSize,
		Epochs:     1,
		LogEvery:   1,
	}
}

// Load reads a Config from YAML. Keys missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override, and Seed whenever SeedSet is true.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.InputSize > 0 {
		c.InputSize = o.InputSize
	}
	if o.HiddenSize > 0 {
		c.HiddenSize = o.HiddenSize
	}
	if o.SeedSet || o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.Data != "" {
		c.Data = o.Data
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.InputSize <= 0 {
		return errors.Errorf("input_size must be > 0 (got %d)", c.InputSize)
	}
	if c.HiddenSize <= 0 {
		return errors.Errorf("hidden_size must be > 0 (got %d)", c.HiddenSize)
	}
	if c.Epochs <= 0 {
		return errors.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.Data == "" {
		return errors.New("data must be set")
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 1
	}
	return nil
}
