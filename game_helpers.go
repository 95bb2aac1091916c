package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/pattern"
	"github.com/sheikhrachel/go-life/utils"
)

// newGrid builds the starting grid: the configured pattern centred on the
// board, or a random fill with a few known shapes mixed in.
func newGrid(config utils.Config, logger *slog.Logger) (*model.Grid, error) {
	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, err
	}

	if config.PatternFile != "" {
		cells, err := pattern.Load(config.PatternFile)
		if err != nil {
			return nil, err
		}
		var patternWidth int
		if len(cells) > 0 {
			patternWidth = len(cells[0])
		}
		if patternWidth > config.Width || len(cells) > config.Height {
			logger.Warn("pattern larger than grid, clipping",
				"pattern", config.PatternFile,
				"pattern_width", patternWidth,
				"pattern_height", len(cells))
		}
		grid.Place(cells, (config.Width-patternWidth)/2, (config.Height-len(cells))/2)
		return grid, nil
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("random fill", "seed", seed, "density", config.RandomDensity)
	grid.Randomize(config.RandomDensity, rand.New(rand.NewSource(seed)))

	if config.Width >= 10 && config.Height >= 10 {
		grid.AddGlider(5, 5)
		if config.Width >= 20 && config.Height >= 15 {
			grid.AddGlider(config.Width-8, 5)
		}
		grid.AddOscillator(config.Width/4, config.Height/4)
		if config.Width >= 30 {
			grid.AddOscillator(3*config.Width/4, 3*config.Height/4)
		}
	}
	return grid, nil
}

// stepGame advances the grid n generations and prints the final board
func stepGame(out io.Writer, config utils.Config, n int, logger *slog.Logger) error {
	if n < 0 {
		return errors.Errorf("[stepGame] generations must not be negative, got %d", n)
	}

	grid, err := newGrid(config, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := grid.Step(n, config.Workers); err != nil {
		return err
	}
	logger.Debug("stepped",
		"generations", n,
		"living", grid.CountLivingCells(),
		"elapsed", time.Since(start))

	_, err = fmt.Fprint(out, grid.String())
	return err
}

// statusLine summarises the current generation
func statusLine(grid *model.Grid, stats *utils.Stats) string {
	state := "Active"
	if stats.Population == 0 {
		state = "Extinct"
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n"+
		"Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
		stats.Generation, stats.Population, stats.Density(grid.GetWidth()*grid.GetHeight()), state,
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}

// runGame animates the grid until the generation limit, extinction or Ctrl+C
func runGame(ctx context.Context, out io.Writer, config utils.Config, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	grid, err := newGrid(config, logger)
	if err != nil {
		return err
	}

	var (
		renderer = model.NewTerminalRenderer(out)
		stats    = utils.NewStats()
		ticker   = time.NewTicker(max(config.FrameRate, time.Millisecond))
	)
	defer ticker.Stop()

	logger.Info("starting",
		"width", config.Width,
		"height", config.Height,
		"living", grid.CountLivingCells(),
		"workers", config.Workers)

	stats.Update(0, grid.CountLivingCells(), 0)
	for generation := 0; ; {
		renderer.Clear()
		renderer.Display(grid, statusLine(grid, stats))

		switch {
		case stats.Population == 0:
			logger.Info("extinct", "generation", generation)
			return nil
		case config.MaxGenerations > 0 && generation >= config.MaxGenerations:
			logger.Info("reached generation limit", "generation", generation)
			return nil
		}

		select {
		case <-ctx.Done():
			logger.Info("shutting down",
				"generation", generation,
				"runtime", stats.Runtime().Round(time.Millisecond),
				"avg_population", stats.AveragePopulation)
			return nil
		case <-ticker.C:
		}

		frameStart := time.Now()
		if err := grid.AdvanceParallel(config.Workers); err != nil {
			return err
		}
		generation++
		stats.Update(generation, grid.CountLivingCells(), time.Since(frameStart))
	}
}
