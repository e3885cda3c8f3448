package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-gol-regions/model"
	"github.com/sheikhrachel/go-gol-regions/utils"
)

// runGame is the entry point of the run command
func runGame(cmd *cobra.Command, _ []string) error {
	config, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger := utils.NewLogger(os.Stderr, config.LogLevel, config.LogJSON)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = playGame(ctx, config, boardPath, os.Stdout, logger); err != nil {
		logger.Error("run failed", "error", err)
		return err
	}
	return nil
}

// resolveConfig loads the optional config file and applies flag overrides
func resolveConfig(cmd *cobra.Command) (utils.Config, error) {
	config := utils.DefaultConfig()
	if configPath != "" {
		var err error
		if config, err = utils.LoadConfig(configPath); err != nil {
			return config, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("generations") {
		config.Generations = generations
	}
	if flags.Changed("row-groups") {
		config.RowGroups = rowGroups
	}
	if flags.Changed("col-groups") {
		config.ColGroups = colGroups
	}
	if flags.Changed("delay") {
		config.FrameRate = frameRate
	}
	if flags.Changed("plain") {
		config.Plain = plain
	}
	if flags.Changed("no-clear") {
		config.ClearScreen = !noClear
	}
	if flags.Changed("log-level") {
		config.LogLevel = logLevel
	}
	if flags.Changed("log-json") {
		config.LogJSON = logJSON
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "[resolveConfig]")
	}
	return config, nil
}

// playGame loads the board and renders every generation of the run to out
func playGame(ctx context.Context, config utils.Config, board string, out io.Writer, logger *slog.Logger) error {
	sim, renderer, stats, err := initializeGame(config, board, out, logger)
	if err != nil {
		return err
	}

	grid, _ := sim.Snapshot()
	displayGameInfo(out, config, grid, len(sim.Regions()))

	lastFrameTime := time.Now()
	return sim.Run(ctx, func(g *model.Grid, generation int) error {
		if config.ClearScreen {
			if err := renderer.Clear(); err != nil {
				return err
			}
		}

		stats.Update(generation, g.CountLivingCells(), sim.LastChanges(), time.Since(lastFrameTime))
		lastFrameTime = time.Now()

		if err := renderer.Display(g, generation); err != nil {
			return err
		}
		displayGameStatus(out, generation, g, stats)

		if generation < config.Generations && config.FrameRate > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(config.FrameRate):
			}
		}
		return nil
	})
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, board string, out io.Writer, logger *slog.Logger) (
	*model.Simulation,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	grid, err := model.LoadBoard(board, config.DelimiterRune())
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame]")
	}

	sim, err := model.NewSimulation(grid, config, logger)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame]")
	}

	return sim, model.NewTerminalRenderer(out, config.Plain), utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, grid *model.Grid, regions int) {
	fmt.Fprintf(out, "Grid: %dx%d | Regions: %d (%dx%d) | Generations: %d | Initial living cells: %d\n",
		grid.Rows(), grid.Cols(), regions, config.RowGroups, config.ColGroups,
		config.Generations, grid.CountLivingCells())
	fmt.Fprintln(out)
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, generation int, grid *model.Grid, stats *utils.Stats) {
	living := grid.CountLivingCells()
	density := float64(living) / float64(grid.Rows()*grid.Cols()) * 100

	status := "Active"
	if generation > 0 && stats.LastChanges == 0 {
		status = "Stable"
	}
	if living == 0 {
		status = "Extinct"
	}

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Changes: %d | Status: %s\n",
		generation, living, density, stats.LastChanges, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Fprintln(out)
}
