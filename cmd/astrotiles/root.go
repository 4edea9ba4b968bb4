package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Asteroidea-tn/astrotiles/env"
	"github.com/Asteroidea-tn/astrotiles/pkg/astrolog"
	"github.com/Asteroidea-tn/astrotiles/pkg/astropoints"
	"github.com/Asteroidea-tn/astrotiles/pkg/astrotiles"
)

type rootOptions struct {
	format   string
	logLevel string
	envFiles []string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "astrotiles [input-file]",
		Short: "Find the biggest rectangle spanned by two red tiles",
		Long: `astrotiles reads one "x,y" red tile per line and prints the area of the
biggest rectangle with red tiles on two opposite corners, then the biggest
one whose corners are also joined through red and green tiles.

The input file defaults to $TILES_INPUT, then "input".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text or yaml (default $TILES_FORMAT, then text)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (default $LOG_LEVEL, then info)")
	cmd.Flags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load (default .env)")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string, opts rootOptions) error {
	cfg, err := env.Load(opts.envFiles...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if opts.format != "" {
		cfg.Format = opts.format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logCfg := cfg.Logger()
	logCfg.Console = cmd.ErrOrStderr()
	astrolog.InitLogger(logCfg)

	points, err := astropoints.Load(cfg.Input)
	if err != nil {
		return err
	}
	log.Info().Str("input", cfg.Input).Int("points", len(points)).Msg("Red tiles loaded")

	report, err := astrotiles.Solve(points)
	if err != nil {
		return err
	}

	if cfg.Format == env.FormatYAML {
		return report.WriteYAML(cmd.OutOrStdout())
	}
	return report.WriteText(cmd.OutOrStdout())
}
