package config

import (
	"errors"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates application configuration values, read from the
// environment at startup.
type Config struct {
	HTTP     HTTPConfig
	Upstream UpstreamConfig
	Logging  LoggingConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host              string        `env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port              int           `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout       time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout      time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout       time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout   time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	AllowedOriginsCSV string        `env:"SERVER_ALLOWED_ORIGINS"`
}

// UpstreamConfig describes connectivity to the payment provider API. The
// credentials are process-wide, read-only, and validated once here; handlers
// never consult the environment themselves.
type UpstreamConfig struct {
	BaseURL   string        `env:"YAYA_BASE_URL"`
	APIKey    string        `env:"YAYA_API_KEY"`
	APISecret string        `env:"YAYA_API_SECRET"`
	Timeout   time.Duration `env:"YAYA_TIMEOUT" env-default:"15s"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `env:"LOG_LEVEL" env-default:"info"`
	Format        string `env:"LOG_FORMAT" env-default:"text"`
	IncludeCaller bool   `env:"LOG_INCLUDE_CALLER" env-default:"false"`
}

var (
	// ErrMissingBaseURL indicates the upstream base URL is not provided.
	ErrMissingBaseURL = errors.New("upstream base URL is required")
	// ErrMissingAPIKey indicates the upstream API key is not provided.
	ErrMissingAPIKey = errors.New("upstream API key is required")
	// ErrMissingAPISecret indicates the upstream signing secret is not provided.
	ErrMissingAPISecret = errors.New("upstream API secret is required")
)

// Load reads configuration from environment variables, applying defaults.
// A missing upstream credential fails here so the process never starts with
// an unusable signer.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Upstream.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c UpstreamConfig) validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.APISecret == "" {
		return ErrMissingAPISecret
	}
	return nil
}
