// Package config holds the settings of a wave spectrum survey: where the
// records come from, the uncertainty of each instrument and how the
// estimation pipeline is tuned.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-swell/algorithms/common"
	"github.com/RyanBlaney/sonido-swell/algorithms/spectral"
	"github.com/RyanBlaney/sonido-swell/logging"
)

// LengthPolicy decides what happens when the acceleration spectrum comes out
// longer than the RAO it is divided by.
type LengthPolicy string

const (
	// PolicyStrict reports the divergence as a length mismatch.
	PolicyStrict LengthPolicy = "strict"
	// PolicyTruncate transforms only the first len(RAO) position samples.
	PolicyTruncate LengthPolicy = "truncate"
)

// ParseLengthPolicy converts a policy name into a LengthPolicy.
func ParseLengthPolicy(name string) (LengthPolicy, error) {
	switch p := LengthPolicy(name); p {
	case PolicyStrict, PolicyTruncate:
		return p, nil
	default:
		return "", fmt.Errorf("unknown length policy %q", name)
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// EstimationConfig configures one survey run
type EstimationConfig struct {
	// Records
	HeavePath        string `json:"heave_path"`        // calibration heave displacement
	ElevationPath    string `json:"elevation_path"`    // calibration wave elevation
	AccelerationPath string `json:"acceleration_path"` // heave acceleration at sea

	// Instrument uncertainty, as the full width of the uniform interval
	HeaveUncertainty       float32 `json:"heave_uncertainty"`
	ElevationUncertainty   float32 `json:"elevation_uncertainty"`
	AccelerationResolution float32 `json:"acceleration_resolution"`

	// Sampling interval of the acceleration record in seconds
	Timestep float32 `json:"timestep"`

	// Pipeline tuning
	Backend         spectral.Backend `json:"backend"`
	LengthPolicy    LengthPolicy     `json:"length_policy"`
	MaxBufferLength int              `json:"max_buffer_length"`
	Seed            uint64           `json:"seed"`
	Deterministic   bool             `json:"deterministic,omitempty"` // midpoint sampling, no randomness

	// Output
	ReportLines int    `json:"report_lines"`
	LogLevel    string `json:"log_level"`
}

// DefaultEstimationConfig returns the settings of the reference survey
func DefaultEstimationConfig() *EstimationConfig {
	return &EstimationConfig{
		HeavePath:              "testingHeave.csv",
		ElevationPath:          "testingWaveElevation.csv",
		AccelerationPath:       "oceanHeaveAcceleration.csv",
		HeaveUncertainty:       0.1,
		ElevationUncertainty:   0.1,
		AccelerationResolution: 0.1,
		Timestep:               0.1,
		Backend:                spectral.BackendRadix2,
		LengthPolicy:           PolicyStrict,
		MaxBufferLength:        common.MaxBufferLength,
		Seed:                   1,
		ReportLines:            9,
		LogLevel:               "info",
	}
}

// Validate checks that the configuration can drive a survey.
func (c *EstimationConfig) Validate() error {
	switch {
	case c.HeavePath == "":
		return invalid("heave path is required")
	case c.ElevationPath == "":
		return invalid("elevation path is required")
	case c.AccelerationPath == "":
		return invalid("acceleration path is required")
	}

	if !isFinite(c.Timestep) || c.Timestep <= 0 {
		return invalid("timestep must be a positive number of seconds, got %v", c.Timestep)
	}

	for _, u := range []struct {
		name  string
		value float32
	}{
		{"heave uncertainty", c.HeaveUncertainty},
		{"elevation uncertainty", c.ElevationUncertainty},
		{"acceleration resolution", c.AccelerationResolution},
	} {
		if !isFinite(u.value) || u.value < 0 {
			return invalid("%s must be a non-negative number, got %v", u.name, u.value)
		}
	}

	if _, err := spectral.ParseBackend(string(c.Backend)); err != nil {
		return invalid("%v", err)
	}
	if _, err := ParseLengthPolicy(string(c.LengthPolicy)); err != nil {
		return invalid("%v", err)
	}
	if c.MaxBufferLength < 2 || c.MaxBufferLength > common.MaxBufferLength {
		return invalid("max buffer length must be in [2, %d], got %d", common.MaxBufferLength, c.MaxBufferLength)
	}
	if c.ReportLines < 2 {
		return invalid("report lines must be at least 2, got %d", c.ReportLines)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return invalid("%v", err)
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
