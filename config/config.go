// Package config provides the run configuration of the disassembler.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/chism/api"
	"github.com/sarchlab/chism/core"
)

// Config holds every setting of a run. Zero values mean "use the default".
type Config struct {
	// Output is the listing path. Empty derives it from the input path.
	Output string `yaml:"output"`
	// Format is "plain" or "table".
	Format string `yaml:"format"`
	// Workers is the number of goroutines that render words.
	Workers int `yaml:"workers"`
	// Origin is the address of the first word in table listings.
	Origin int `yaml:"origin"`
	// LogLevel is trace, debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// Report prints a verification report to stderr after the run.
	Report bool `yaml:"report"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format:   api.FormatPlain.String(),
		Workers:  1,
		Origin:   core.DefaultOrigin,
		LogLevel: "warn",
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if _, err := api.ParseFormat(c.Format); err != nil {
		return err
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	if c.Origin < 0 || c.Origin > 0xFFFF {
		return fmt.Errorf("origin 0x%X is outside the address space", c.Origin)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level converts LogLevel to a slog level. "trace" maps to core.LevelTrace.
func (c Config) Level() (slog.Level, error) {
	if strings.EqualFold(c.LogLevel, "trace") {
		return core.LevelTrace, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("log level: %w", err)
	}

	return level, nil
}

// Builder returns a disassembler builder set up from c.
func (c Config) Builder() core.Builder {
	return core.NewBuilder().
		WithWorkers(c.Workers).
		WithOrigin(c.Origin)
}

// OutputPath returns Output, or the name derived from input when Output is
// empty.
func (c Config) OutputPath(input string) string {
	if c.Output != "" {
		return c.Output
	}
	return DefaultOutputPath(input)
}

// DefaultOutputPath drops the last three characters of input and appends
// "asm". It does not look for a dot, so "rom.ch8" gives "rom.asm" but
// "game.c8" gives "gameasm".
func DefaultOutputPath(input string) string {
	if len(input) < 3 {
		return input + "asm"
	}
	return input[:len(input)-3] + "asm"
}
