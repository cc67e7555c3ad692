package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Width <= 0 || config.Height <= 0 {
		t.Fatalf("default grid size %dx%d is not positive", config.Width, config.Height)
	}
	if config.FrameRate <= 0 {
		t.Fatalf("default frame rate %v is not positive", config.FrameRate)
	}
	if config.RandomDensity <= 0 || config.RandomDensity > 1 {
		t.Fatalf("default random density %v is outside (0, 1]", config.RandomDensity)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	// Defaults still come back so the caller can fall through
	if config.Width != DefaultConfig().Width {
		t.Fatalf("got width %d, expected default %d", config.Width, DefaultConfig().Width)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": 80, "max_generations": 50}`), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Width != 80 {
		t.Fatalf("got width %d, expected 80", config.Width)
	}
	if config.MaxGenerations != 50 {
		t.Fatalf("got max generations %d, expected 50", config.MaxGenerations)
	}
	// Untouched fields keep their defaults
	if config.FrameRate != 150*time.Millisecond {
		t.Fatalf("got frame rate %v, expected default %v", config.FrameRate, 150*time.Millisecond)
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
