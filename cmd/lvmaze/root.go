package main

import (
	"io"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	flagNameConfig    = "config"
	flagNameSeed      = "seed"
	flagNameNoAnimate = "no-animate"
	flagNameNoColor   = "no-color"
	flagNameVerbose   = "verbose"
)

const examples = `  # draw a 10x20 maze
  lvmaze 10 20

  # reproducible maze, no animation
  lvmaze 10 20 --seed=42 --no-animate

  # settings from a file
  lvmaze 10 20 --config=lvmaze.yaml`

// flags holds the command line switches of one invocation.
type flags struct {
	configPath string
	seed       uint64
	noAnimate  bool
	noColor    bool
	verbose    bool
}

// newRootCmd wires the command to the given streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "lvmaze HEIGHT WIDTH",
		Short:         "Draw a random maze and show its solution or longest path",
		Example:       examples,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.Wrapf(errUsage, "got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, f, args)
			if err != nil {
				return err
			}

			log, flush := newLogger(errOut, cfg.Verbose)
			defer flush()

			return run(cfg, in, out, maze.WithLogger(log))
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, flagNameConfig, "", "YAML file with default settings")
	fs.Uint64Var(&f.seed, flagNameSeed, 0, "random seed; 0 picks a fresh maze every run")
	fs.BoolVar(&f.noAnimate, flagNameNoAnimate, false, "draw without pauses")
	fs.BoolVar(&f.noColor, flagNameNoColor, false, "draw path markers without colour")
	fs.BoolVar(&f.verbose, flagNameVerbose, false, "log debug lines to stderr")

	return cmd
}

// buildConfig layers the config file, the positional dimensions and the
// flags, then validates the result.
func buildConfig(cmd *cobra.Command, f flags, args []string) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	cfg.Height, cfg.Width, err = config.ParseDimensions(args[0], args[1])
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed(flagNameSeed) {
		cfg.Seed = f.seed
	}
	if f.noAnimate {
		cfg.Animate = false
	}
	if f.noColor {
		cfg.Color = false
	}
	if f.verbose {
		cfg.Verbose = true
	}

	return cfg, cfg.Validate()
}

// run draws the maze described by cfg on out and serves the menu read
// from in.
func run(cfg config.Config, in io.Reader, out io.Writer, opts ...maze.Option) error {
	termOpts := []render.Option{
		render.WithMazeDelay(cfg.MazeDelay),
		render.WithPathDelay(cfg.PathDelay),
	}
	if !cfg.Animate || !render.IsTerminal(out) {
		termOpts = append(termOpts, render.WithoutAnimation())
	}
	termOpts = append(termOpts, render.WithColor(cfg.Color && render.IsTerminal(out)))
	term := render.New(out, termOpts...)

	opts = append(opts, maze.WithRenderer(term))
	if cfg.Seed != 0 {
		opts = append(opts, maze.WithSeed(cfg.Seed))
	}
	m, err := maze.New(cfg.Height, cfg.Width, opts...)
	if err != nil {
		return err
	}

	term.Clear()
	if err := m.Generate(); err != nil {
		return err
	}
	term.Park()

	if err := serveMenu(m, term, in); err != nil {
		return err
	}

	return term.Err()
}
