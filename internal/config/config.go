package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// ErrMissingJWTSecret is returned when no signing secret is configured.
// There is deliberately no compiled-in default.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	Port           string
	Env            string
	DatabaseDSN    string
	JWTSecret      string
	AccessTokenTTL time.Duration
	AllowedOrigins []string
	SeedFile       string
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/wardrobe?parseTime=true"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: 30 * time.Minute,
		SeedFile:       os.Getenv("SEED_FILE"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}

	if ttl := os.Getenv("ACCESS_TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
		}
		cfg.AccessTokenTTL = d
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
