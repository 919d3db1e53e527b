package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	RendererText   = "text"
	RendererScreen = "screen"
)

// ErrInvalidConfig is returned by Validate for out of range settings
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Dimension        int           `json:"dimension" yaml:"dimension"`
	FrameRate        time.Duration `json:"frame_rate" yaml:"frame_rate"`
	Parallel         bool          `json:"parallel" yaml:"parallel"`
	Workers          int           `json:"workers" yaml:"workers"`
	Seed             int64         `json:"seed" yaml:"seed"`
	MaxGenerations   int           `json:"max_generations" yaml:"max_generations"`
	Renderer         string        `json:"renderer" yaml:"renderer"`
	StagnationWindow int           `json:"stagnation_window" yaml:"stagnation_window"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Dimension:        0, // Derived from the terminal width
		FrameRate:        200 * time.Millisecond,
		Parallel:         false,
		Workers:          0,
		Seed:             0,
		MaxGenerations:   0,
		Renderer:         RendererText,
		StagnationWindow: 5,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks settings that cannot be corrected at runtime
func (c Config) Validate() error {
	if c.Dimension < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] dimension must not be negative, got %d", c.Dimension)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative, got %s", c.FrameRate)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must not be negative, got %d", c.Workers)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.StagnationWindow < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_window must not be negative, got %d", c.StagnationWindow)
	}
	if c.Renderer != RendererText && c.Renderer != RendererScreen {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown renderer %q", c.Renderer)
	}
	return nil
}
