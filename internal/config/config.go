// Package config loads engine configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the CLI and the daily-plan agent need.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default
	// XDG data path.
	DBPath string

	// CatalogPath is a catalog JSON file. Empty means the built-in
	// seed catalog.
	CatalogPath string

	// LearnerID is the default learner for single-learner setups.
	LearnerID string

	// SessionSize bounds session plans.
	SessionSize int

	// PlanTime is the daily-plan time of day, "HH:MM".
	PlanTime string

	// Timezone for the daily-plan schedule.
	Timezone string
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in if present; real environment variables
// win.
func Load() (*Config, error) {
	// Missing .env is fine; only a malformed one is an error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		DBPath:      os.Getenv("HABLA_DB"),
		CatalogPath: os.Getenv("HABLA_CATALOG"),
		LearnerID:   envOr("HABLA_LEARNER", "default"),
		SessionSize: 8,
		PlanTime:    envOr("HABLA_PLAN_TIME", "09:50"),
		Timezone:    envOr("HABLA_TZ", "Europe/Dublin"),
	}

	if v := os.Getenv("HABLA_SESSION_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("HABLA_SESSION_SIZE must be a positive integer, got %q", v)
		}
		cfg.SessionSize = n
	}

	if _, err := time.Parse("15:04", cfg.PlanTime); err != nil {
		return nil, fmt.Errorf("HABLA_PLAN_TIME must be HH:MM, got %q", cfg.PlanTime)
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("HABLA_TZ: %w", err)
	}

	return cfg, nil
}

// Location returns the configured timezone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
