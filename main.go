package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sheikhrachel/go-life/utils"
)

// flagKeys maps command line flags onto config keys
var flagKeys = map[string]string{
	"width":       "width",
	"height":      "height",
	"density":     "random_density",
	"seed":        "seed",
	"workers":     "workers",
	"pattern":     "pattern_file",
	"generations": "max_generations",
	"frame-rate":  "frame_rate",
}

type options struct {
	configFile string
	verbose    bool
	steps      int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	defaults := utils.DefaultConfig()

	root := &cobra.Command{
		Use:          "golife",
		Short:        "Conway's Game of Life on a bounded grid",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file (yaml, json or toml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	pf.Int("width", defaults.Width, "grid width")
	pf.Int("height", defaults.Height, "grid height")
	pf.Float64("density", defaults.RandomDensity, "fraction of cells alive in a random fill")
	pf.Int64("seed", defaults.Seed, "random seed (0 uses the clock)")
	pf.Int("workers", defaults.Workers, "row bands each generation is split across")
	pf.String("pattern", defaults.PatternFile, "plaintext .cells pattern placed at the grid centre")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Animate the simulation in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			return runGame(cmd.Context(), cmd.OutOrStdout(), config, logger)
		},
	}
	runCmd.Flags().Int("generations", defaults.MaxGenerations, "stop after this many generations (0 = unlimited)")
	runCmd.Flags().Duration("frame-rate", defaults.FrameRate, "delay between frames")

	stepCmd := &cobra.Command{
		Use:   "step",
		Short: "Advance a number of generations and print the final board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			return stepGame(cmd.OutOrStdout(), config, opts.steps, logger)
		},
	}
	stepCmd.Flags().IntVarP(&opts.steps, "generations", "n", 1, "generations to advance")

	root.AddCommand(runCmd, stepCmd)
	return root
}

// setup layers config file, env and flags, then builds the logger
func setup(cmd *cobra.Command, opts *options) (utils.Config, *slog.Logger, error) {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	v, err := utils.NewViper(opts.configFile)
	if err != nil {
		return utils.Config{}, nil, err
	}
	if err := bindFlags(cmd, v); err != nil {
		return utils.Config{}, nil, err
	}

	config, err := utils.Load(v)
	if err != nil {
		return config, nil, err
	}
	logger.Debug("config loaded",
		"file", v.ConfigFileUsed(),
		"width", config.Width,
		"height", config.Height,
		"workers", config.Workers)
	return config, logger, nil
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		// step's -n counts generations to advance, not the run limit
		if cmd.Name() == "step" && name == "generations" {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}
