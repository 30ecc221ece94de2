package config

import (
	"dispatch-toolkit/internal/platform/db"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full configuration surface shared by the binaries.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Catalog CatalogConfig
	Billing BillingConfig
	Random  RandomConfig
}

type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level  string
	Format string
}

// CatalogConfig selects where reference data is read from. An empty Driver
// means the compiled-in tables.
type CatalogConfig struct {
	Driver   string
	DSN      string
	SeedPath string
}

// BillingConfig holds the zone used for timestamps entered without one.
type BillingConfig struct {
	Timezone string
	Location *time.Location
}

// RandomConfig selects a reproducible generator when RANDOM_SEED is set.
type RandomConfig struct {
	Seed   uint64
	Seeded bool
}

// Load reads environment variables, optionally from envFile first, and
// validates the result. A missing .env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config: read env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: Get("PORT", "8080"),
		},
		Log: LogConfig{
			Level:  Get("LOG_LEVEL", "info"),
			Format: Get("LOG_FORMAT", "json"),
		},
		Catalog: CatalogConfig{
			Driver:   strings.TrimSpace(os.Getenv("CATALOG_DRIVER")),
			DSN:      strings.TrimSpace(os.Getenv("CATALOG_DSN")),
			SeedPath: Get("SEED_PATH", "data/seeds/reference.json"),
		},
		Billing: BillingConfig{
			Timezone: Get("TIMEZONE", "UTC"),
		},
	}

	if raw := strings.TrimSpace(os.Getenv("RANDOM_SEED")); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("load config: RANDOM_SEED %q: %w", raw, err)
		}
		cfg.Random = RandomConfig{Seed: seed, Seeded: true}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Validate checks required combinations and resolves the billing location.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("PORT must not be empty")
	}

	switch c.Catalog.Driver {
	case "":
	case db.DriverPostgres, db.DriverSQLite:
		if c.Catalog.DSN == "" {
			return fmt.Errorf("CATALOG_DSN is required when CATALOG_DRIVER=%s", c.Catalog.Driver)
		}
	default:
		return fmt.Errorf("CATALOG_DRIVER %q is not supported (use %q or %q)", c.Catalog.Driver, db.DriverSQLite, db.DriverPostgres)
	}

	loc, err := time.LoadLocation(c.Billing.Timezone)
	if err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Billing.Timezone, err)
	}
	c.Billing.Location = loc

	return nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
