// SPDX-License-Identifier: EPL-2.0

// Package config loads the mosaic command settings from the environment.
package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Config holds the runtime configuration of the mosaic command.
type Config struct {
	// Corpus
	SampleRate int // every decoded file must have this rate

	// Matching
	Neighbors    int
	RandomFactor float64
	Tolerance    float64
	Tonality     bool

	// Run
	Workers    int
	Seed       uint64 // 0 is reserved: a fresh seed is drawn and logged
	SkipErrors bool   // leave failing frames silent instead of aborting
	LogLevel   string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		SampleRate: envInt("MOSAIC_SAMPLE_RATE", 44100),

		Neighbors:    envInt("MOSAIC_NEIGHBORS", 10),
		RandomFactor: envFloat("MOSAIC_RANDOM_FACTOR", 0.2),
		Tolerance:    envFloat("MOSAIC_TOLERANCE", 0.1),
		Tonality:     envBool("MOSAIC_TONALITY", false),

		Workers:    envInt("MOSAIC_WORKERS", runtime.NumCPU()),
		Seed:       envUint("MOSAIC_SEED", 0),
		SkipErrors: envBool("MOSAIC_SKIP_ERRORS", false),
		LogLevel:   envStr("MOSAIC_LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}
