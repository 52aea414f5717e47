// Package config holds the runtime configuration surface: defaults,
// optional yaml file, CLI overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumacast/lumacast/internal/effect"
	"github.com/lumacast/lumacast/internal/frame"
)

// Config is fixed at startup; nothing in it changes during a run.
type Config struct {
	Target      string `yaml:"target"`
	Universe    uint16 `yaml:"universe"`
	NumLEDs     int    `yaml:"num_leds"`
	Effect      string `yaml:"effect"`
	PreviewAddr string `yaml:"preview_addr,omitempty"`
}

// Default returns the reference sender's defaults.
func Default() Config {
	return Config{
		Target:   "192.168.50.244",
		Universe: 0,
		NumLEDs:  144,
		Effect:   "rainbow",
	}
}

// Load reads a yaml config file into cfg, leaving untouched fields at
// their prior values.
func Load(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Validate reports the first configuration error, if any.
func (c Config) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("target address must not be empty")
	}
	if c.NumLEDs < 1 || c.NumLEDs > frame.MaxPixels {
		return fmt.Errorf("num_leds %d out of range [1,%d]", c.NumLEDs, frame.MaxPixels)
	}
	if _, err := effect.New(c.Effect, c.NumLEDs); err != nil {
		return err
	}
	return nil
}
