package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAccessTTL  = "1h"
	defaultRefreshTTL = "168h"
	defaultPort       = "8080"
)

type Config struct {
	DatabaseURL   string
	Port          string
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Load reads the process environment and fails on missing or invalid
// values. Signing secrets have no fallback: a misconfigured process must
// refuse to start instead of signing tokens with a guessable default.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Port:          strings.TrimSpace(getEnv("PORT", defaultPort)),
		AccessSecret:  strings.TrimSpace(os.Getenv("AUTH_SECRET_KEY")),
		RefreshSecret: strings.TrimSpace(os.Getenv("REFRESH_SECRET_KEY")),
	}

	var err error
	cfg.AccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.RefreshTTL, err = parseDurationEnv("JWT_REFRESH_TTL", defaultRefreshTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.AccessSecret == "" {
		return fmt.Errorf("AUTH_SECRET_KEY must be set")
	}
	if cfg.RefreshSecret == "" {
		return fmt.Errorf("REFRESH_SECRET_KEY must be set")
	}
	// Independent secrets: a leaked access token must never be
	// presentable as a refresh token.
	if cfg.AccessSecret == cfg.RefreshSecret {
		return fmt.Errorf("AUTH_SECRET_KEY and REFRESH_SECRET_KEY must differ")
	}
	if cfg.AccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.RefreshTTL <= 0 {
		return fmt.Errorf("JWT_REFRESH_TTL must be > 0")
	}
	return nil
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
