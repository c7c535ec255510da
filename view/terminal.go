package view

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/logrusorgru/aurora"

	"toruslife/utils"
)

// TerminalRenderer implements basic terminal rendering for headless runs.
type TerminalRenderer struct{}

// Display writes a rendered board, as produced by Universe.Render, to the
// terminal.
func (r *TerminalRenderer) Display(board string) {
	fmt.Print(board)
}

// DisplayStatus prints the per-frame status lines shown above the board.
// It takes plain snapshot values rather than the universe itself so the
// display side never races the simulation goroutine.
func (r *TerminalRenderer) DisplayStatus(generation int, width, height, population uint, stats *utils.Stats) {
	density := float64(population) / float64(width*height) * 100

	fmt.Printf("%s: %d | %s: %d | %s: %.1f%%\n",
		aurora.Green("Gen"), generation,
		aurora.Green("Living"), population,
		aurora.Green("Density"), density)
	fmt.Printf("%s: %.1f gen/sec | %s: %.1f | %s: %.1fs\n",
		aurora.Green("Performance"), stats.GenerationsPerSecond,
		aurora.Green("Avg Pop"), stats.AveragePopulation,
		aurora.Green("Runtime"), time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command("clear")
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
