package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, 1, cfg.Catalog.RetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Idempotency.TTL)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_ACCOUNT_URL", "http://accounts:9000/")
	t.Setenv("CATALOG_RETRY_ATTEMPTS", "3")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/loans")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://accounts:9000", cfg.Catalog.AccountURL)
	assert.Equal(t, 3, cfg.Catalog.RetryAttempts)
	assert.Equal(t, "postgres://u:p@db:5432/loans", cfg.Postgres.DSN)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Catalog:   CatalogConfig{Timeout: time.Second, RetryAttempts: 1},
			RateLimit: RateLimitConfig{Enabled: true, RequestsPerMin: 60},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"zero retry attempts", func(c *Config) { c.Catalog.RetryAttempts = 0 }, true},
		{"zero timeout", func(c *Config) { c.Catalog.Timeout = 0 }, true},
		{"rate limit without budget", func(c *Config) { c.RateLimit.RequestsPerMin = 0 }, true},
		{"rate limit disabled", func(c *Config) {
			c.RateLimit.Enabled = false
			c.RateLimit.RequestsPerMin = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
