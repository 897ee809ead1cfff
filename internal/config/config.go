package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"5000"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE" default:"1h"`

	// AdminToken is the static shared bearer token accepted as an
	// alternative to a valid session on protected routes. A single value
	// for all callers, by contract with the deployed frontend.
	AdminToken string `env:"ADMIN_TOKEN" default:"demo-admin-token"`

	DefaultAdminUsername string `env:"DEFAULT_ADMIN_USERNAME" default:"admin"`
	DefaultAdminPassword string `env:"DEFAULT_ADMIN_PASSWORD" default:"admin123"`

	// AllowedOrigins is a comma-separated list of exact origins permitted
	// for credentialed cross-origin requests. AllowedOriginSuffix admits
	// any origin whose host ends with the suffix (deploy previews).
	AllowedOrigins      string `env:"ALLOWED_ORIGINS"`
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" default:".onrender.com"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"DATABASE_URL":   cfg.DatabaseURL,
		"REDIS_URL":      cfg.RedisURL,
		"SESSION_SECRET": cfg.SessionSecret,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if cfg.SessionMaxAge <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE must be positive, got %s", cfg.SessionMaxAge)
	}

	return nil
}

// Origins returns the exact-match origin allow-list.
func (c *Config) Origins() []string {
	if c.AllowedOrigins == "" {
		return nil
	}
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv != "production"
}
