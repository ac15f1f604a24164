package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Infrastructure
	Postgres PostgresConfig
	Redis    RedisConfig

	// Remote catalog services (account + item stores)
	Catalog CatalogConfig

	// Edge protection
	RateLimit   RateLimitConfig
	Idempotency IdempotencyConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CatalogConfig points the loan service at the account and item stores.
// RetryAttempts = 1 means a single attempt with no retry.
type CatalogConfig struct {
	AccountURL    string
	ItemURL       string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	MaxTrackedPeers int
}

type IdempotencyConfig struct {
	Enabled bool
	TTL     time.Duration
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first if present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.ConnMaxIdleTime = viper.GetDuration("postgres.conn_max_idle_time")

	// Redis
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Catalog
	cfg.Catalog.AccountURL = strings.TrimRight(viper.GetString("catalog.account_url"), "/")
	cfg.Catalog.ItemURL = strings.TrimRight(viper.GetString("catalog.item_url"), "/")
	cfg.Catalog.Timeout = viper.GetDuration("catalog.timeout")
	cfg.Catalog.RetryAttempts = viper.GetInt("catalog.retry_attempts")
	cfg.Catalog.RetryDelay = viper.GetDuration("catalog.retry_delay")

	// Edge protection
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxTrackedPeers = viper.GetInt("rate_limit.max_tracked_peers")
	cfg.Idempotency.Enabled = viper.GetBool("idempotency.enabled")
	cfg.Idempotency.TTL = viper.GetDuration("idempotency.ttl")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.max_open_conns", 50)
	viper.SetDefault("postgres.max_idle_conns", 10)
	viper.SetDefault("postgres.conn_max_lifetime", "1h")
	viper.SetDefault("postgres.conn_max_idle_time", "5m")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("catalog.account_url", "http://localhost:8081")
	viper.SetDefault("catalog.item_url", "http://localhost:8081")
	viper.SetDefault("catalog.timeout", "5s")
	viper.SetDefault("catalog.retry_attempts", 1)
	viper.SetDefault("catalog.retry_delay", "200ms")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 600)
	viper.SetDefault("rate_limit.max_tracked_peers", 1000)

	viper.SetDefault("idempotency.enabled", true)
	viper.SetDefault("idempotency.ttl", "24h")
}

func validate(cfg *Config) error {
	if cfg.Catalog.RetryAttempts < 1 {
		return fmt.Errorf("catalog.retry_attempts must be at least 1, got %d", cfg.Catalog.RetryAttempts)
	}
	if cfg.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog.timeout must be positive")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}
