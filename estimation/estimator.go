// Package estimation derives a vessel's RAO from calibration records and
// uses it to estimate the wave energy spectrum seen by heave accelerometers.
//
// Calibration: heave and elevation records -> periodograms -> ratio -> RAO.
// Estimation: acceleration -> position -> periodogram -> ratio against RAO.
package estimation

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-swell/algorithms/common"
	"github.com/RyanBlaney/sonido-swell/algorithms/spectral"
	"github.com/RyanBlaney/sonido-swell/algorithms/temporal"
	"github.com/RyanBlaney/sonido-swell/estimation/config"
	"github.com/RyanBlaney/sonido-swell/logging"
	"github.com/RyanBlaney/sonido-swell/uncertainty"
)

// Estimator runs the calibration and estimation pipelines. It holds no
// per-run state, but its sampler does, so one Estimator must not be used from
// several goroutines at once.
type Estimator struct {
	logger          logging.Logger
	sampler         uncertainty.Sampler
	power           *spectral.PowerSpectrum
	policy          config.LengthPolicy
	maxBufferLength int
}

// NewEstimator creates an estimator tuned by cfg. A nil cfg selects
// DefaultEstimationConfig and a nil logger the global logger.
func NewEstimator(cfg *config.EstimationConfig, logger logging.Logger) *Estimator {
	if cfg == nil {
		cfg = config.DefaultEstimationConfig()
	}

	fft := spectral.NewFFT()
	fft.SetBackend(cfg.Backend)
	fft.SetLimit(cfg.MaxBufferLength)

	var sampler uncertainty.Sampler = uncertainty.NewUniformSampler(cfg.Seed)
	if cfg.Deterministic {
		sampler = uncertainty.MidpointSampler{}
	}

	policy := cfg.LengthPolicy
	if policy != config.PolicyTruncate {
		policy = config.PolicyStrict
	}

	maxLen := cfg.MaxBufferLength
	if maxLen <= 0 || maxLen > common.MaxBufferLength {
		maxLen = common.MaxBufferLength
	}

	return &Estimator{
		logger: logging.OrGlobal(logger).WithFields(logging.Fields{
			"component": "estimator",
		}),
		sampler:         sampler,
		power:           spectral.NewPowerSpectrumWithFFT(fft),
		policy:          policy,
		maxBufferLength: maxLen,
	}
}

// SetSampler replaces the uncertainty sampler.
func (e *Estimator) SetSampler(s uncertainty.Sampler) {
	e.sampler = s
}

// MaxBufferLength returns the largest working buffer the estimator allocates.
func (e *Estimator) MaxBufferLength() int {
	return e.maxBufferLength
}

// CharacteriseRAO derives the RAO from paired calibration records.
//
// Both records are copied, perturbed within their uncertainty and turned
// into periodograms; the RAO is heave power over elevation power per bin.
// Records of different length are rejected before anything is allocated.
func (e *Estimator) CharacteriseRAO(heave, elevation []float32, heaveUncertainty, elevationUncertainty float32) (*RAO, error) {
	if len(heave) != len(elevation) {
		return nil, &LengthMismatchError{
			What:  "heave and elevation records",
			Left:  len(heave),
			Right: len(elevation),
		}
	}
	if _, err := common.NextPowerOfTwoWithin(len(heave), e.maxBufferLength); err != nil {
		return nil, fmt.Errorf("calibration records: %w", err)
	}

	e.logger.Debug("characterising RAO", logging.Fields{"samples": len(heave)})

	heavePower, err := e.perturbedPower(heave, heaveUncertainty)
	if err != nil {
		return nil, fmt.Errorf("heave power spectrum: %w", err)
	}
	elevationPower, err := e.perturbedPower(elevation, elevationUncertainty)
	if err != nil {
		return nil, fmt.Errorf("elevation power spectrum: %w", err)
	}

	rao := &RAO{values: spectral.Ratio(heavePower, elevationPower)}
	e.logger.Debug("RAO characterised", logging.Fields{"bins": rao.Len()})
	return rao, nil
}

// EstimateWaveSpectrum estimates the wave energy spectrum from a heave
// acceleration record sampled every dt seconds.
//
// The record is perturbed by resolution, integrated twice to position and
// zero-padded to the RAO length before its periodogram is divided by the RAO.
// Records longer than half the buffer limit are rejected up front.
func (e *Estimator) EstimateWaveSpectrum(rao *RAO, acceleration []float32, resolution, dt float32) (*Spectrum, error) {
	if limit := e.maxBufferLength / 2; len(acceleration) > limit {
		return nil, fmt.Errorf("%w: acceleration record has %d samples, maximum is %d",
			ErrSizeOverflow, len(acceleration), limit)
	}
	if len(acceleration) == 0 {
		return nil, fmt.Errorf("%w: acceleration record is empty", ErrSizeOverflow)
	}
	if rao.Len() == 0 {
		return nil, ErrEmptyRAO
	}
	if d := float64(dt); d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimestep, dt)
	}

	raoLen := rao.Len()
	log := e.logger.WithFields(logging.Fields{"samples": len(acceleration), "bins": raoLen})
	log.Debug("estimating wave spectrum")

	position := common.NewBufferWithLimit(e.maxBufferLength)
	defer position.Release()

	if err := position.Load(acceleration); err != nil {
		return nil, err
	}
	uncertainty.Perturb(position.Samples(), resolution, e.sampler)
	temporal.NewMotionIntegrator(dt).Integrate(position.Samples())

	if err := position.ExtendTo(raoLen); err != nil {
		return nil, fmt.Errorf("padding position record: %w", err)
	}

	series := position.Samples()
	if e.policy == config.PolicyTruncate && len(series) > raoLen {
		log.Warn("acceleration record longer than RAO, truncating", logging.Fields{"dropped": len(series) - raoLen})
		series = series[:raoLen]
	}

	heavePower, err := e.power.FromTimeSeries(series)
	if err != nil {
		return nil, fmt.Errorf("heave power spectrum: %w", err)
	}

	switch {
	case len(heavePower) < raoLen:
		padded := common.NewBufferWithLimit(e.maxBufferLength)
		if err := padded.Load(heavePower); err != nil {
			return nil, err
		}
		if err := padded.ExtendTo(raoLen); err != nil {
			return nil, fmt.Errorf("padding heave power spectrum: %w", err)
		}
		heavePower = padded.Samples()
	case len(heavePower) > raoLen && e.policy == config.PolicyTruncate:
		heavePower = heavePower[:raoLen]
	case len(heavePower) > raoLen:
		return nil, &LengthMismatchError{
			What:  "heave power spectrum and RAO",
			Left:  len(heavePower),
			Right: raoLen,
		}
	}

	spectrum := &Spectrum{
		values:   spectral.Ratio(heavePower, rao.values),
		timestep: dt,
	}
	log.Debug("wave spectrum estimated")
	return spectrum, nil
}

func (e *Estimator) perturbedPower(record []float32, width float32) ([]float32, error) {
	buf := common.NewBufferWithLimit(e.maxBufferLength)
	defer buf.Release()

	if err := buf.Load(record); err != nil {
		return nil, err
	}
	uncertainty.Perturb(buf.Samples(), width, e.sampler)

	return e.power.FromTimeSeries(buf.Samples())
}
