package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"dimension": 40, "parallel": true, "frame_rate": 100000000}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Dimension != 40 || !config.Parallel || config.FrameRate != 100*time.Millisecond {
		t.Fatalf("unexpected config %+v", config)
	}
	if config.Renderer != RendererText || config.StagnationWindow != 5 {
		t.Fatalf("defaults not kept: %+v", config)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "dimension: 12\nframe_rate: 50ms\nrenderer: screen\nseed: 99\n")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Dimension != 12 || config.FrameRate != 50*time.Millisecond {
		t.Fatalf("unexpected config %+v", config)
	}
	if config.Renderer != RendererScreen || config.Seed != 99 {
		t.Fatalf("unexpected config %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v, expected os.ErrNotExist", err)
	}

	path := writeFile(t, "broken.json", `{"dimension": `)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := map[string]func(*Config){
		"negative dimension": func(c *Config) { c.Dimension = -1 },
		"negative frame":     func(c *Config) { c.FrameRate = -time.Second },
		"negative workers":   func(c *Config) { c.Workers = -2 },
		"negative max gens":  func(c *Config) { c.MaxGenerations = -1 },
		"negative window":    func(c *Config) { c.StagnationWindow = -1 },
		"unknown renderer":   func(c *Config) { c.Renderer = "gpu" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			config := DefaultConfig()
			mutate(&config)
			if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}
