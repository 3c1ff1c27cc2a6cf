// wavespectrum estimates the ocean wave energy spectrum seen by a vessel's
// heave accelerometer, using the vessel's RAO characterised from calibration
// measurements.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-swell/algorithms/spectral"
	"github.com/RyanBlaney/sonido-swell/estimation"
	"github.com/RyanBlaney/sonido-swell/estimation/config"
	"github.com/RyanBlaney/sonido-swell/ingest"
	"github.com/RyanBlaney/sonido-swell/logging"
	"github.com/RyanBlaney/sonido-swell/report"
)

var version = "dev"

type options struct {
	envFile string
	summary bool

	heavePath        string
	elevationPath    string
	accelerationPath string

	heaveUncertainty       float32
	elevationUncertainty   float32
	accelerationResolution float32
	timestep               float32

	backend       string
	policy        string
	seed          uint64
	deterministic bool
	lines         int
	logLevel      string
}

func main() {
	err := fang.Execute(context.Background(), newRootCommand(),
		fang.WithVersion(version),
		fang.WithErrorHandler(logError),
	)
	if err != nil {
		os.Exit(1)
	}
}

// logError reports a failed run through the logging package on w.
func logError(w io.Writer, _ fang.Styles, err error) {
	logging.NewDefaultLoggerTo(w, w).Error(err, "wavespectrum failed")
}

func newRootCommand() *cobra.Command {
	return newRootCommandWith(&options{})
}

func newRootCommandWith(opts *options) *cobra.Command {
	defaults := config.DefaultEstimationConfig()

	cmd := &cobra.Command{
		Use:   "wavespectrum",
		Short: "Wave spectrum estimation from heave acceleration",
		Long: `wavespectrum characterises a vessel's response amplitude operator (RAO)
from paired heave displacement and wave elevation test measurements, then
estimates the wave energy spectrum from heave acceleration measured at sea.

Records are CSV files of comma separated numbers or .xlsx spreadsheets.
Settings come from the defaults, then WAVE_* environment variables (and an
optional .env file), then flags.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return run(cmd, cfg, opts.summary)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.heavePath, "heave", "d", defaults.HeavePath, "path to heave displacement test measurements")
	flags.Float32VarP(&opts.heaveUncertainty, "heave-uncertainty", "D", defaults.HeaveUncertainty, "heave measurement uncertainty")
	flags.StringVarP(&opts.elevationPath, "elevation", "e", defaults.ElevationPath, "path to wave elevation test measurements")
	flags.Float32VarP(&opts.elevationUncertainty, "elevation-uncertainty", "E", defaults.ElevationUncertainty, "wave elevation measurement uncertainty")
	flags.StringVarP(&opts.accelerationPath, "acceleration", "a", defaults.AccelerationPath, "path to heave acceleration measurements taken at sea")
	flags.Float32VarP(&opts.accelerationResolution, "resolution", "A", defaults.AccelerationResolution, "accelerometer resolution")
	flags.Float32VarP(&opts.timestep, "timestep", "t", defaults.Timestep, "time between successive measurements in seconds")

	flags.StringVar(&opts.backend, "backend", string(defaults.Backend), "transform backend: radix2, godsp or gonum")
	flags.StringVar(&opts.policy, "length-policy", string(defaults.LengthPolicy), "acceleration spectrum longer than RAO: strict or truncate")
	flags.Uint64Var(&opts.seed, "seed", defaults.Seed, "seed for uncertainty sampling")
	flags.BoolVar(&opts.deterministic, "deterministic", false, "use interval midpoints instead of random uncertainty draws")
	flags.IntVar(&opts.lines, "lines", defaults.ReportLines, "maximum number of spectrum lines to print")
	flags.StringVar(&opts.logLevel, "log-level", defaults.LogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&opts.envFile, "env-file", ".env", "optional file of environment variables")
	flags.BoolVar(&opts.summary, "summary", false, "print the spectral peak and total energy")

	return cmd
}

// resolve layers defaults, environment and explicitly set flags.
func (o *options) resolve(cmd *cobra.Command) (*config.EstimationConfig, error) {
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return nil, err
	}

	cfg := config.DefaultEstimationConfig()
	if err := config.FromEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("heave", func() { cfg.HeavePath = o.heavePath })
	set("heave-uncertainty", func() { cfg.HeaveUncertainty = o.heaveUncertainty })
	set("elevation", func() { cfg.ElevationPath = o.elevationPath })
	set("elevation-uncertainty", func() { cfg.ElevationUncertainty = o.elevationUncertainty })
	set("acceleration", func() { cfg.AccelerationPath = o.accelerationPath })
	set("resolution", func() { cfg.AccelerationResolution = o.accelerationResolution })
	set("timestep", func() { cfg.Timestep = o.timestep })
	set("backend", func() { cfg.Backend = spectral.Backend(o.backend) })
	set("length-policy", func() { cfg.LengthPolicy = config.LengthPolicy(o.policy) })
	set("seed", func() { cfg.Seed = o.seed })
	set("deterministic", func() { cfg.Deterministic = o.deterministic })
	set("lines", func() { cfg.ReportLines = o.lines })
	set("log-level", func() { cfg.LogLevel = o.logLevel })

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, cfg *config.EstimationConfig, summary bool) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	// Stdout carries the report only.
	logger := logging.NewDefaultLoggerTo(cmd.ErrOrStderr(), cmd.ErrOrStderr())
	logger.SetLevel(level)
	logging.SetGlobalLogger(logger)

	result, err := estimation.Survey(ingest.NewFileLoader(logger), cfg)
	if err != nil {
		return fmt.Errorf("wave spectrum estimation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := report.NewPrinter(out, cfg.ReportLines).Print(result.Spectrum); err != nil {
		return err
	}

	if summary {
		s, err := report.Summarise(result.Spectrum)
		if err != nil {
			return err
		}
		return report.PrintSummary(out, s)
	}
	return nil
}
