// Copyright (c) 2026 Workshelf. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, Storefront) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Workshelf sync daemon.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL) — hosts the catalog entities and settings.
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Store (Redis) — persists the storefront session token.
	RedisURL string `env:"REDIS_URL,required"`

	// StorefrontBaseURL is the scheme+host of the storefront. Overridden in tests.
	StorefrontBaseURL string `env:"STOREFRONT_BASE_URL" envDefault:"https://www.dlsite.com"`

	// StorefrontSessionToken optionally seeds the session from a cookie value
	// captured out of band. Headless deployments use this instead of the
	// interactive login surface.
	StorefrontSessionToken string `env:"STOREFRONT_SESSION_TOKEN"`

	// HTTPTimeout bounds every outbound storefront request.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	// ScrapeWorkers caps how many product pages are scraped concurrently.
	ScrapeWorkers int `env:"SCRAPE_WORKERS" envDefault:"4"`

	// ScrapeRPS paces outbound scrape requests to respect the storefront's
	// rate tolerance. Shared across all workers.
	ScrapeRPS float64 `env:"SCRAPE_RPS" envDefault:"2"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
