package aoc

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
)

// NewCommand returns the root command running slvr for year.
func NewCommand(year int, src fs.FS, slvr any) *cobra.Command {
	opts := Options{Day: -1}
	cmd := &cobra.Command{
		Use:           fmt.Sprintf("aoc%d", year),
		Short:         fmt.Sprintf("Run Advent of Code %d solvers against their samples and inputs", year),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			log := newLogger(LogConfig{
				Level:  cfg.LogLevel,
				Debug:  cfg.Debug,
				Output: cmd.ErrOrStderr(),
			})
			samples, err := loadSamples(src)
			if err != nil {
				log.Error().Err(err).Msg("loading samples")
				return err
			}
			r := &runner{
				year:    year,
				slvr:    slvr,
				samples: samples,
				cfg:     cfg,
				opts:    opts,
				out:     cmd.OutOrStdout(),
				log:     log,
			}
			if err := r.run(); err != nil {
				log.Error().Err(err).Msg("run failed")
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.Day, "day", "d", -1, "day to run; -1 runs every day")
	f.StringVarP(&opts.Part, "part", "p", "", "part to run")
	f.BoolVar(&opts.Sample, "sample", false, "only run samples")
	f.BoolVar(&opts.SkipSample, "skip-sample", false, "skip samples")
	f.BoolVar(&opts.Debug, "debug", false, "debug logging")
	f.StringVar(&opts.Inputs, "inputs", ".", "directory containing <year>/<day>.input files")
	f.StringVar(&opts.Config, "config", "", "YAML config file")
	return cmd
}
