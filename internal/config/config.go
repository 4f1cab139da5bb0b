package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultListenAddr     = ":8080"
	defaultContentBaseURL = "http://localhost:1337"
	defaultContentTimeout = "10s"
	defaultDatabaseURL    = "leprive.db"
	defaultDefaultLocale  = "pl"
	defaultAgeTokenTTL    = "8760h" // one year
	defaultAgeTokenSecret = "change-me-age-secret"
	defaultCookieSecure   = "false"
)

type Config struct {
	AppEnv         string
	ListenAddr     string
	DatabaseURL    string
	ContentBaseURL string
	ContentTimeout time.Duration
	DefaultLocale  string
	AgeTokenSecret string
	AgeTokenTTL    time.Duration
	CookieSecure   bool
}

// Load reads configuration from the environment, optionally seeded from a
// local .env file. Every value has a development default; production is
// expected to override DATABASE_URL, CONTENT_BASE_URL and AGE_TOKEN_SECRET.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		ListenAddr:     getEnv("LISTEN_ADDR", defaultListenAddr),
		DatabaseURL:    getEnv("DATABASE_URL", defaultDatabaseURL),
		ContentBaseURL: getEnv("CONTENT_BASE_URL", defaultContentBaseURL),
		DefaultLocale:  getEnv("DEFAULT_LOCALE", defaultDefaultLocale),
		AgeTokenSecret: getEnv("AGE_TOKEN_SECRET", defaultAgeTokenSecret),
	}

	var err error
	cfg.ContentTimeout, err = time.ParseDuration(getEnv("CONTENT_TIMEOUT", defaultContentTimeout))
	if err != nil {
		return nil, fmt.Errorf("invalid CONTENT_TIMEOUT: %w", err)
	}

	cfg.AgeTokenTTL, err = time.ParseDuration(getEnv("AGE_TOKEN_TTL", defaultAgeTokenTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid AGE_TOKEN_TTL: %w", err)
	}

	cfg.CookieSecure, err = strconv.ParseBool(getEnv("COOKIE_SECURE", defaultCookieSecure))
	if err != nil {
		return nil, fmt.Errorf("invalid COOKIE_SECURE: %w", err)
	}

	if cfg.AppEnv == "production" && cfg.AgeTokenSecret == defaultAgeTokenSecret {
		return nil, fmt.Errorf("AGE_TOKEN_SECRET must be set in production")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
