package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Husnainn01/mizhuo-sub000/internal/auth"
)

// Config holds runtime configuration sourced from env vars. It is
// constructed once at startup and injected; nothing reads the
// environment after Load returns.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	TokenTTL      time.Duration
	CookieSecure  bool
	CORSOrigins   []string
}

// Load reads configuration from the environment and performs minimal
// validation. The cookie-secure flag derives from APP_ENV=production.
func Load() (Config, error) {
	cfg := Config{
		Port:          fallback(os.Getenv("PORT"), "8080"),
		MongoURI:      strings.TrimSpace(os.Getenv("MONGODB_URI")),
		MongoDatabase: fallback(os.Getenv("MONGODB_DATABASE"), "mizhuo"),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		CookieSecure:  strings.EqualFold(strings.TrimSpace(os.Getenv("APP_ENV")), "production"),
		CORSOrigins:   parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
	}

	days := fallback(os.Getenv("TOKEN_TTL_DAYS"), "7")
	if ttlDays, err := strconv.Atoi(days); err == nil && ttlDays > 0 {
		cfg.TokenTTL = time.Duration(ttlDays) * 24 * time.Hour
	} else {
		cfg.TokenTTL = auth.DefaultTokenTTL
	}

	if cfg.MongoURI == "" {
		return Config{}, errors.New("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
