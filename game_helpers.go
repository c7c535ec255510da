package main

import (
	"fmt"

	"github.com/integrii/flaggy"

	"toruslife/universe"
	"toruslife/utils"
)

const configFile = "config.json"

// initConfig merges the JSON config file (when present) with command-line
// overrides.
func initConfig() utils.Config {
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	flaggy.SetName("toruslife")
	flaggy.SetDescription("Conway's Game of Life on a toroidal grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.UInt(&config.Width, "x", "width", "Width of the board in cells")
	flaggy.UInt(&config.Height, "y", "height", "Height of the board in cells")
	flaggy.Duration(&config.FrameRate, "i", "interval", "Interval between generations in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&config.MaxGenerations, "m", "maxGenerations", "Stop after this many generations (0 = run until interrupted)")
	flaggy.String(&config.Seed, "e", "seed", "Seeding mode [random|pattern|glider]")
	flaggy.Bool(&config.Interactive, "n", "interactive", "Start the interactive terminal UI")
	flaggy.Parse()

	if !utils.ValidSeed(config.Seed) {
		flaggy.ShowHelpAndExit("unknown seeding mode: " + config.Seed)
	}

	return config
}

// newUniverse builds the starting board for the configured seeding mode.
func newUniverse(config utils.Config) *universe.Universe {
	switch config.Seed {
	case utils.SeedRandom:
		return universe.New(config.Width, config.Height, nil)
	case utils.SeedPattern:
		// the reproducible demo pattern comes with a fixed 64x64 size
		return universe.DeterministicPattern()
	default:
		return universe.WithSeededGlider(config.Width, config.Height)
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, u *universe.Universe) {
	fmt.Printf("Grid: %dx%d | Seed: %s | Initial living cells: %d\n",
		u.Width(), u.Height(), config.Seed, u.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}
