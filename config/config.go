// Package config holds htsegen run settings loaded from an optional YAML file.
// Command-line flags override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/htsegen/emit"
	"github.com/katalvlaran/htsegen/supercell"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all htsegen settings.
type Config struct {
	// Cells is the supercell extent along a, b and c.
	Cells []int `yaml:"cells"`
	// Lattice is the name written into file headers.
	Lattice string `yaml:"lattice"`
	// Format is plain, htse or cbor.
	Format string `yaml:"format"`
	// Output is the destination path; empty or "-" means stdout.
	Output string `yaml:"output"`
	// Classes restricts expansion to these exchange classes; empty keeps all.
	Classes []int `yaml:"classes"`
	// Logging configures the zap logger.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Lattice: emit.DefaultLattice,
		Format:  emit.FormatPlain.String(),
		Output:  "-",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML file on top of DefaultConfig. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %v: %w", path, err, ErrInvalid)
	}

	return cfg, nil
}

// Save writes cfg as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Extents converts Cells into supercell extents.
func (c *Config) Extents() (supercell.Extents, error) {
	if len(c.Cells) != 3 {
		return supercell.Extents{}, fmt.Errorf("config: cells needs 3 values, got %d: %w", len(c.Cells), ErrInvalid)
	}
	ext := supercell.Extents{X: c.Cells[0], Y: c.Cells[1], Z: c.Cells[2]}
	if err := ext.Validate(); err != nil {
		return supercell.Extents{}, fmt.Errorf("config: %w", err)
	}

	return ext, nil
}

// Validate checks every field the run depends on.
func (c *Config) Validate() error {
	if _, err := c.Extents(); err != nil {
		return err
	}
	if _, err := emit.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log level %q: %w", c.Logging.Level, ErrInvalid)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log format %q: %w", c.Logging.Format, ErrInvalid)
	}

	return nil
}

// ToStdout reports whether output goes to standard output.
func (c *Config) ToStdout() bool {
	return c.Output == "" || c.Output == "-"
}
