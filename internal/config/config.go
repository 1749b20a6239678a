// Package config holds the engine's tuning parameters (spec §6): the SE
// stopping threshold, the per-trait item cap, the theta quadrature grid and
// the prior distribution. Defaults match the values validated by the
// Monte-Carlo harness in internal/simulate.
package config

import (
	"os"
	"strconv"

	"github.com/openassess/cat-engine/internal/apperr"
)

// ThetaGrid describes the quadrature grid over the latent trait range.
type ThetaGrid struct {
	Min    float64
	Max    float64
	Points int
}

// Prior describes the normal prior placed on theta before any response.
type Prior struct {
	Mean float64
	SD   float64
}

// Config bundles the tunable parameters of the adaptive engine.
type Config struct {
	SEThreshold      float64
	MaxItemsPerTrait int
	Grid             ThetaGrid
	Prior            Prior
}

// Default returns the reference configuration (spec §6 defaults).
func Default() Config {
	return Config{
		SEThreshold:      0.65,
		MaxItemsPerTrait: 4,
		Grid:             ThetaGrid{Min: -4, Max: 4, Points: 181},
		Prior:            Prior{Mean: 0, SD: 1},
	}
}

// Load builds a Config from environment variables, falling back to Default
// for anything unset.
func Load() (Config, error) {
	cfg := Default()

	cfg.SEThreshold = getEnvFloatOrDefault("CAT_SE_THRESHOLD", cfg.SEThreshold)
	cfg.MaxItemsPerTrait = getEnvIntOrDefault("CAT_MAX_ITEMS_PER_TRAIT", cfg.MaxItemsPerTrait)
	cfg.Grid.Min = getEnvFloatOrDefault("CAT_THETA_MIN", cfg.Grid.Min)
	cfg.Grid.Max = getEnvFloatOrDefault("CAT_THETA_MAX", cfg.Grid.Max)
	cfg.Grid.Points = getEnvIntOrDefault("CAT_THETA_POINTS", cfg.Grid.Points)
	cfg.Prior.Mean = getEnvFloatOrDefault("CAT_PRIOR_MEAN", cfg.Prior.Mean)
	cfg.Prior.SD = getEnvFloatOrDefault("CAT_PRIOR_SD", cfg.Prior.SD)

	if err := Validate(cfg); err != nil {
		return Config{}, apperr.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

// Validate checks the structural invariants a Config must satisfy: a grid
// wide enough to matter, a positive prior SD, a non-negative stopping
// threshold and an item cap the bank can satisfy (at most 4 per trait).
func Validate(cfg Config) error {
	if cfg.Grid.Min >= cfg.Grid.Max {
		return apperr.New("CONFIG_INVALID", "theta grid min must be less than max")
	}
	if cfg.Grid.Points < 2 {
		return apperr.New("CONFIG_INVALID", "theta grid must have at least 2 points")
	}
	if cfg.Prior.SD <= 0 {
		return apperr.New("CONFIG_INVALID", "prior standard deviation must be positive")
	}
	if cfg.SEThreshold < 0 {
		return apperr.New("CONFIG_INVALID", "SE threshold must be non-negative")
	}
	if cfg.MaxItemsPerTrait < 1 || cfg.MaxItemsPerTrait > 4 {
		return apperr.New("CONFIG_INVALID", "max items per trait must be in 1..4")
	}
	return nil
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
