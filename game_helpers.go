package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

// parseArgs builds the configuration from the config file, flags and the optional
// positional dimension, in increasing order of precedence
func parseArgs(args []string) (utils.Config, error) {
	fs := flag.NewFlagSet("go-life", flag.ContinueOnError)
	var (
		configPath = fs.String("config", defaultConfigFile, "path to a JSON or YAML config file")
		seed       = fs.Int64("seed", 0, "random seed for the first generation, 0 for time based")
		parallel   = fs.Bool("parallel", false, "split each generation across all CPUs")
		renderer   = fs.String("renderer", utils.RendererText, "text or screen")
	)
	if err := fs.Parse(args); err != nil {
		return utils.DefaultConfig(), errors.Wrap(err, "[parseArgs] failed to parse flags")
	}

	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		fmt.Println("Using default configuration (config file not found)")
		config = utils.DefaultConfig()
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			config.Seed = *seed
		case "parallel":
			config.Parallel = *parallel
		case "renderer":
			config.Renderer = *renderer
		}
	})

	if fs.NArg() > 0 {
		dimension, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return config, errors.Wrapf(model.ErrConfig, "[parseArgs] dimension %q is not a number", fs.Arg(0))
		}
		if dimension < 1 {
			return config, errors.Wrapf(model.ErrConfig, "[parseArgs] dimension must be at least 1, got %d", dimension)
		}
		config.Dimension = dimension
	}

	return config, config.Validate()
}

// resolveDimension falls back to the widest board that fits the terminal,
// two characters per cell plus the border
func resolveDimension(config utils.Config, columns func() (int, error)) (int, error) {
	if config.Dimension > 0 {
		return config.Dimension, nil
	}

	cols, err := columns()
	if err != nil {
		return 0, errors.Wrap(err, "[resolveDimension] no dimension given and terminal width unknown")
	}

	dimension := cols/2 - 2
	if dimension < 1 {
		return 0, errors.Wrapf(model.ErrConfig, "[resolveDimension] terminal is too narrow (%d columns)", cols)
	}
	return dimension, nil
}

// boardOptions translates the configuration into board construction options
func boardOptions(config utils.Config) []model.Option {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []model.Option{model.WithSeeder(model.NewRandSeeder(seed))}
	if config.Parallel {
		opts = append(opts, model.WithParallel(config.Workers))
	}
	return opts
}

// newRenderer opens the configured renderer and the matching terminal width probe
func newRenderer(config utils.Config, onQuit func()) (model.Renderer, func() (int, error), error) {
	if config.Renderer == utils.RendererScreen {
		screen, err := model.NewScreenRenderer(onQuit)
		if err != nil {
			return nil, nil, err
		}
		return screen, func() (int, error) { return screen.Columns(), nil }, nil
	}
	return model.NewTerminalRenderer(), model.TerminalColumns, nil
}

// gameStatus describes the current generation for the status line
func gameStatus(population int, stagnant bool) string {
	switch {
	case population == 0:
		return "Extinct"
	case stagnant:
		return "Stagnant"
	default:
		return "Active"
	}
}

// displayGameStatus shows performance figures below the text frame
func displayGameStatus(board *model.Board, status string, stats *utils.Stats) {
	density := float64(board.Population()) / float64(board.Size()*board.Size()) * 100

	fmt.Printf("Gen: %d | Density: %.1f%% | Status: %s\n", stats.TotalGenerations, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}
