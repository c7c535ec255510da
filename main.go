package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"toruslife/universe"
	"toruslife/utils"
	"toruslife/view"
)

// frame is one rendered generation handed from the simulation goroutine to
// the display goroutine.
type frame struct {
	generation int
	board      string
	population uint
	tickTime   time.Duration
}

func main() {
	config := initConfig()

	u := newUniverse(config)

	if config.Interactive {
		view.NewConsoleUI(u, config).Start()
		return
	}

	displayGameInfo(config, u)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats := utils.NewStats()
	if err := runHeadless(ctx, u, config, stats); err != nil && err != context.Canceled {
		fmt.Println("Error:", err)
	}

	fmt.Printf("\nFinal stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// runHeadless splits the run into a simulation goroutine and a display
// goroutine joined by a frame channel. The universe is only ever touched by
// the simulation goroutine; the display side works on rendered snapshots.
func runHeadless(ctx context.Context, u *universe.Universe, config utils.Config, stats *utils.Stats) error {
	var (
		frames   = make(chan frame, 1)
		renderer = &view.TerminalRenderer{}
		// read the dimensions before the goroutines start; the pattern
		// seeding mode ignores the configured size
		width  = u.Width()
		height = u.Height()
	)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(frames)
		ticker := time.NewTicker(config.FrameRate)
		defer ticker.Stop()

		var tickTime time.Duration
		for generation := 0; ; generation++ {
			f := frame{
				generation: generation,
				board:      u.Render(),
				population: u.Population(),
				tickTime:   tickTime,
			}
			select {
			case frames <- f:
			case <-ctx.Done():
				return ctx.Err()
			}

			if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
				return nil
			}

			start := time.Now()
			u.Tick()
			tickTime = time.Since(start)

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	eg.Go(func() error {
		for f := range frames {
			stats.Update(f.generation, f.population, f.tickTime)
			renderer.Clear()
			renderer.DisplayStatus(f.generation, width, height, f.population, stats)
			renderer.Display(f.board)
		}
		return nil
	})

	return eg.Wait()
}
