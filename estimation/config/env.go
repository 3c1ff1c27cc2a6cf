package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/RyanBlaney/sonido-swell/algorithms/spectral"
)

// Environment variables read by FromEnv.
const (
	EnvHeavePath              = "WAVE_HEAVE_PATH"
	EnvElevationPath          = "WAVE_ELEVATION_PATH"
	EnvAccelerationPath       = "WAVE_ACCELERATION_PATH"
	EnvHeaveUncertainty       = "WAVE_HEAVE_UNCERTAINTY"
	EnvElevationUncertainty   = "WAVE_ELEVATION_UNCERTAINTY"
	EnvAccelerationResolution = "WAVE_ACCELERATION_RESOLUTION"
	EnvTimestep               = "WAVE_TIMESTEP"
	EnvBackend                = "WAVE_BACKEND"
	EnvLengthPolicy           = "WAVE_LENGTH_POLICY"
	EnvMaxBufferLength        = "WAVE_MAX_BUFFER_LENGTH"
	EnvSeed                   = "WAVE_SEED"
	EnvDeterministic          = "WAVE_DETERMINISTIC"
	EnvReportLines            = "WAVE_REPORT_LINES"
	EnvLogLevel               = "LOG_LEVEL"
)

// LoadDotEnv loads variables from the given .env files (".env" when none are
// named) without overriding variables that are already set. Missing files
// are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv overlays the WAVE_* environment variables onto cfg. Unset
// variables leave the current value alone; malformed ones are reported.
func FromEnv(cfg *EstimationConfig) error {
	cfg.HeavePath = getEnvOrDefault(EnvHeavePath, cfg.HeavePath)
	cfg.ElevationPath = getEnvOrDefault(EnvElevationPath, cfg.ElevationPath)
	cfg.AccelerationPath = getEnvOrDefault(EnvAccelerationPath, cfg.AccelerationPath)
	cfg.Backend = spectral.Backend(getEnvOrDefault(EnvBackend, string(cfg.Backend)))
	cfg.LengthPolicy = LengthPolicy(getEnvOrDefault(EnvLengthPolicy, string(cfg.LengthPolicy)))
	cfg.LogLevel = getEnvOrDefault(EnvLogLevel, cfg.LogLevel)

	var err error
	if cfg.HeaveUncertainty, err = getEnvFloat32(EnvHeaveUncertainty, cfg.HeaveUncertainty); err != nil {
		return err
	}
	if cfg.ElevationUncertainty, err = getEnvFloat32(EnvElevationUncertainty, cfg.ElevationUncertainty); err != nil {
		return err
	}
	if cfg.AccelerationResolution, err = getEnvFloat32(EnvAccelerationResolution, cfg.AccelerationResolution); err != nil {
		return err
	}
	if cfg.Timestep, err = getEnvFloat32(EnvTimestep, cfg.Timestep); err != nil {
		return err
	}
	if cfg.MaxBufferLength, err = getEnvInt(EnvMaxBufferLength, cfg.MaxBufferLength); err != nil {
		return err
	}
	if cfg.ReportLines, err = getEnvInt(EnvReportLines, cfg.ReportLines); err != nil {
		return err
	}
	if value := os.Getenv(EnvSeed); value != "" {
		seed, perr := strconv.ParseUint(value, 10, 64)
		if perr != nil {
			return envError(EnvSeed, value, perr)
		}
		cfg.Seed = seed
	}
	if value := os.Getenv(EnvDeterministic); value != "" {
		det, perr := strconv.ParseBool(value)
		if perr != nil {
			return envError(EnvDeterministic, value, perr)
		}
		cfg.Deterministic = det
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat32(key string, defaultValue float32) (float32, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return defaultValue, envError(key, value, err)
	}
	return float32(f), nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, envError(key, value, err)
	}
	return i, nil
}

func envError(key, value string, err error) error {
	return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, value, err)
}
