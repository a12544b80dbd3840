package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvMatchingMaxDistanceKm  = "OMBAA_MATCHING_MAX_DISTANCE_KM"
	EnvMatchingRandomFallback = "OMBAA_MATCHING_RANDOM_FALLBACK"
)

// MatchingConfig holds match scoring parameters.
type MatchingConfig struct {
	MaxDistanceKm float64 `toml:"max_distance_km"`

	// RandomFallback scores matches with a uniform value in [0.5, 1.0)
	// when either side lacks coordinates, instead of failing the
	// proximity factor. Intended for environments seeded without
	// geocoded profiles.
	RandomFallback bool `toml:"random_fallback"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *MatchingConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *MatchingConfig) Merge(overlay *MatchingConfig) {
	if overlay.MaxDistanceKm != 0 {
		c.MaxDistanceKm = overlay.MaxDistanceKm
	}
	if overlay.RandomFallback {
		c.RandomFallback = true
	}
}

func (c *MatchingConfig) loadDefaults() {
	if c.MaxDistanceKm == 0 {
		c.MaxDistanceKm = 50
	}
}

func (c *MatchingConfig) loadEnv() {
	if v := os.Getenv(EnvMatchingMaxDistanceKm); v != "" {
		if km, err := strconv.ParseFloat(v, 64); err == nil {
			c.MaxDistanceKm = km
		}
	}
	if v := os.Getenv(EnvMatchingRandomFallback); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.RandomFallback = b
		}
	}
}

func (c *MatchingConfig) validate() error {
	if c.MaxDistanceKm <= 0 {
		return fmt.Errorf("invalid max_distance_km: %v", c.MaxDistanceKm)
	}
	return nil
}
