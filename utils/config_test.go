package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"width": 10, "height": 5, "seed": "random", "frame_rate": 200000000}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 10 || config.Height != 5 {
		t.Fatalf("dimensions = %dx%d, expected 10x5", config.Width, config.Height)
	}
	if config.Seed != SeedRandom {
		t.Fatalf("seed = %q, expected %q", config.Seed, SeedRandom)
	}
	if config.FrameRate != 200*time.Millisecond {
		t.Fatalf("frame rate = %v, expected 200ms", config.FrameRate)
	}
	// fields absent from the file keep their defaults
	if config.MaxGenerations != DefaultConfig().MaxGenerations {
		t.Fatalf("max generations = %d, expected default %d", config.MaxGenerations, DefaultConfig().MaxGenerations)
	}
}

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if config != DefaultConfig() {
		t.Fatalf("config = %+v, expected defaults", config)
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestValidSeed(t *testing.T) {
	for _, name := range []string{SeedRandom, SeedPattern, SeedGlider} {
		if !ValidSeed(name) {
			t.Errorf("ValidSeed(%q) = false, expected true", name)
		}
	}
	if ValidSeed("spaceship") {
		t.Error(`ValidSeed("spaceship") = true, expected false`)
	}
}
