package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP           HTTPConfig           `yaml:"http"`
	Classification ClassificationConfig `yaml:"classification"`
	Providers      ProvidersConfig      `yaml:"providers"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

// ClassificationConfig controls profile storage and result caching.
type ClassificationConfig struct {
	CacheTTL time.Duration  `yaml:"cacheTtl"`
	Valkey   ValkeyConfig   `yaml:"valkey"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// ValkeyConfig contains connection information for the result cache.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ProvidersConfig points at the upstream data services.
type ProvidersConfig struct {
	PollenBaseURL    string        `yaml:"pollenBaseUrl"`
	WeatherBaseURL   string        `yaml:"weatherBaseUrl"`
	PredictorBaseURL string        `yaml:"predictorBaseUrl"`
	UpstreamTimeout  time.Duration `yaml:"upstreamTimeout"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("POLLEN_BASE_URL"); v != "" {
		cfg.Providers.PollenBaseURL = v
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.Providers.WeatherBaseURL = v
	}
	if v := os.Getenv("PREDICTOR_BASE_URL"); v != "" {
		cfg.Providers.PredictorBaseURL = v
	}
	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Providers.UpstreamTimeout = parsed
		}
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Classification.Postgres.DSN = v
	}
	if v := os.Getenv("VALKEY_ADDR"); v != "" {
		cfg.Classification.Valkey.Addr = v
		cfg.Classification.Valkey.Enabled = true
	}
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address must not be empty")
	}
	if c.Providers.UpstreamTimeout <= 0 {
		return errors.New("providers.upstreamTimeout must be positive")
	}
	if c.Classification.CacheTTL < 0 {
		return errors.New("classification.cacheTtl must not be negative")
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Classification: ClassificationConfig{
			CacheTTL: time.Hour,
		},
		Providers: ProvidersConfig{
			UpstreamTimeout: 10 * time.Second,
		},
	}
}
