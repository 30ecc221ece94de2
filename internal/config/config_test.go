package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "LOG_FORMAT", "CATALOG_DRIVER", "CATALOG_DSN", "SEED_PATH", "TIMEZONE", "RANDOM_SEED"} {
		// Setenv registers the restore; the variable must be absent, not empty,
		// for godotenv to fill it.
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Catalog.Driver)
	assert.Equal(t, "data/seeds/reference.json", cfg.Catalog.SeedPath)
	assert.Equal(t, "UTC", cfg.Billing.Location.String())
	assert.False(t, cfg.Random.Seeded)
}

func TestLoadRandomSeed(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Setenv("RANDOM_SEED", "42")
	cfg, err := Load(missing)
	require.NoError(t, err)
	assert.Equal(t, RandomConfig{Seed: 42, Seeded: true}, cfg.Random)

	t.Setenv("RANDOM_SEED", "not-a-number")
	_, err = Load(missing)
	assert.Error(t, err)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "test.env")
	body := "PORT=9090\nCATALOG_DRIVER=sqlite\nCATALOG_DSN=catalog.db\nTIMEZONE=America/Chicago\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Catalog.Driver)
	assert.Equal(t, "catalog.db", cfg.Catalog.DSN)
	assert.Equal(t, "America/Chicago", cfg.Billing.Location.String())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: "8080"},
			Billing: BillingConfig{Timezone: "UTC"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "builtin catalog", mutate: func(*Config) {}},
		{name: "postgres with dsn", mutate: func(c *Config) {
			c.Catalog.Driver = "pgx"
			c.Catalog.DSN = "postgres://localhost/dispatch"
		}},
		{name: "driver without dsn", mutate: func(c *Config) { c.Catalog.Driver = "sqlite" }, wantErr: true},
		{name: "unsupported driver", mutate: func(c *Config) {
			c.Catalog.Driver = "mysql"
			c.Catalog.DSN = "x"
		}, wantErr: true},
		{name: "empty port", mutate: func(c *Config) { c.Server.Port = " " }, wantErr: true},
		{name: "bad timezone", mutate: func(c *Config) { c.Billing.Timezone = "Mars/Olympus" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c.Billing.Location)
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestGet(t *testing.T) {
	t.Setenv("DISPATCH_TEST_KEY", "")
	assert.Equal(t, "fallback", Get("DISPATCH_TEST_KEY", "fallback"))

	t.Setenv("DISPATCH_TEST_KEY", "set")
	assert.Equal(t, "set", Get("DISPATCH_TEST_KEY", "fallback"))
}
