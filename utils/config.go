package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Seeding mode names accepted in the config file and on the command line.
const (
	SeedRandom  = "random"
	SeedPattern = "pattern"
	SeedGlider  = "glider"
)

// Config holds the host-side settings for a simulation run
type Config struct {
	Width          uint          `json:"width"`
	Height         uint          `json:"height"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	Seed           string        `json:"seed"`
	Interactive    bool          `json:"interactive"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          64,
		Height:         32,
		FrameRate:      150 * time.Millisecond,
		MaxGenerations: 1000,
		Seed:           SeedGlider,
		Interactive:    false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ValidSeed reports whether name is a known seeding mode.
func ValidSeed(name string) bool {
	switch name {
	case SeedRandom, SeedPattern, SeedGlider:
		return true
	}
	return false
}
