package estimation

import (
	"fmt"

	"github.com/RyanBlaney/sonido-swell/estimation/config"
	"github.com/RyanBlaney/sonido-swell/logging"
)

// Loader yields the samples of a named record.
type Loader interface {
	LoadSamples(source string) ([]float32, error)
}

// SurveyResult is the outcome of a complete survey run.
type SurveyResult struct {
	RAO      *RAO
	Spectrum *Spectrum

	HeaveSamples        int
	ElevationSamples    int
	AccelerationSamples int
}

// Survey loads the three records named by cfg, characterises the RAO from
// the calibration pair and estimates the wave spectrum from the acceleration
// record. Loader failures are returned as *IngestionError.
func Survey(loader Loader, cfg *config.EstimationConfig) (*SurveyResult, error) {
	if cfg == nil {
		cfg = config.DefaultEstimationConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.WithFields(logging.Fields{"component": "survey"})
	estimator := NewEstimator(cfg, logging.GetGlobalLogger())

	heave, err := load(loader, cfg.HeavePath)
	if err != nil {
		return nil, err
	}
	elevation, err := load(loader, cfg.ElevationPath)
	if err != nil {
		return nil, err
	}
	acceleration, err := load(loader, cfg.AccelerationPath)
	if err != nil {
		return nil, err
	}
	logger.Info("records loaded", logging.Fields{
		"heave":        len(heave),
		"elevation":    len(elevation),
		"acceleration": len(acceleration),
	})

	rao, err := estimator.CharacteriseRAO(heave, elevation, cfg.HeaveUncertainty, cfg.ElevationUncertainty)
	if err != nil {
		return nil, fmt.Errorf("characterising RAO: %w", err)
	}

	spectrum, err := estimator.EstimateWaveSpectrum(rao, acceleration, cfg.AccelerationResolution, cfg.Timestep)
	if err != nil {
		return nil, fmt.Errorf("estimating wave spectrum: %w", err)
	}

	return &SurveyResult{
		RAO:                 rao,
		Spectrum:            spectrum,
		HeaveSamples:        len(heave),
		ElevationSamples:    len(elevation),
		AccelerationSamples: len(acceleration),
	}, nil
}

func load(loader Loader, source string) ([]float32, error) {
	samples, err := loader.LoadSamples(source)
	if err != nil {
		return nil, &IngestionError{Source: source, Err: err}
	}
	return samples, nil
}
