package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// maxDurationDays is the largest day count that fits in a time.Duration.
const maxDurationDays = int(math.MaxInt64 / int64(24*time.Hour))

const (
	devAccessTokenSecret  = "dev-insecure-access-secret-change-me"
	devRefreshTokenSecret = "dev-insecure-refresh-secret-change-me"
)

// CookieConfig controls how the token cookies are written.
type CookieConfig struct {
	Secure   bool
	SameSite string `validate:"oneof=lax strict none"`
	Domain   string
	Path     string `validate:"required"`
}

// Config holds application configuration. It is built once at startup and passed by pointer;
// nothing mutates it afterwards.
type Config struct {
	DatabaseURL      string `validate:"required"`
	Port             string `validate:"required,numeric"`
	IsProduction     bool
	EnableDBCheck    bool
	MigrationsPath   string `validate:"required"`
	CORSOrigins      []string
	RequestBodyLimit int64         `validate:"gt=0"`
	ShutdownTimeout  time.Duration `validate:"gt=0"`
	LogLevel         slog.Level

	AccessTokenSecret  string        `validate:"required,min=16"`
	AccessTokenExpiry  time.Duration `validate:"gt=0"`
	RefreshTokenSecret string        `validate:"required,min=16,nefield=AccessTokenSecret"`
	RefreshTokenExpiry time.Duration `validate:"gt=0,gtfield=AccessTokenExpiry"`
	JWTIssuer          string        `validate:"required"`

	Cookie CookieConfig

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("CORS_ORIGIN", "")
	v.SetDefault("LOCAL_CORS_ORIGIN", "")
	v.SetDefault("REQUEST_BODY_LIMIT", 16*1024)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ACCESS_TOKEN_SECRET", devAccessTokenSecret)
	v.SetDefault("ACCESS_TOKEN_EXPIRY", "1h")
	v.SetDefault("REFRESH_TOKEN_SECRET", devRefreshTokenSecret)
	v.SetDefault("REFRESH_TOKEN_EXPIRY", "10d")
	v.SetDefault("JWT_ISSUER", "todo-backend")
	v.SetDefault("COOKIE_SECURE", true)
	v.SetDefault("COOKIE_SAME_SITE", "lax")
	v.SetDefault("COOKIE_DOMAIN", "")
	v.SetDefault("COOKIE_PATH", "/")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.AutomaticEnv()

	accessTTL, err := durationFromEnv(v, "ACCESS_TOKEN_EXPIRY")
	if err != nil {
		return nil, err
	}
	refreshTTL, err := durationFromEnv(v, "REFRESH_TOKEN_EXPIRY")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := durationFromEnv(v, "SHUTDOWN_TIMEOUT")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		CORSOrigins:        splitList(v.GetString("CORS_ORIGIN"), v.GetString("LOCAL_CORS_ORIGIN")),
		RequestBodyLimit:   v.GetInt64("REQUEST_BODY_LIMIT"),
		ShutdownTimeout:    shutdownTimeout,
		LogLevel:           parseLogLevel(v.GetString("LOG_LEVEL")),
		AccessTokenSecret:  v.GetString("ACCESS_TOKEN_SECRET"),
		AccessTokenExpiry:  accessTTL,
		RefreshTokenSecret: v.GetString("REFRESH_TOKEN_SECRET"),
		RefreshTokenExpiry: refreshTTL,
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		Cookie: CookieConfig{
			Secure:   v.GetBool("COOKIE_SECURE"),
			SameSite: strings.ToLower(v.GetString("COOKIE_SAME_SITE")),
			Domain:   v.GetString("COOKIE_DOMAIN"),
			Path:     v.GetString("COOKIE_PATH"),
		},
		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: v.GetString("POSTHOG_ENDPOINT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.AccessTokenSecret == devAccessTokenSecret || cfg.RefreshTokenSecret == devRefreshTokenSecret {
		slog.Warn("Token secrets are using development defaults. Set ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET.")
	}
	if len(cfg.CORSOrigins) == 0 {
		slog.Warn("CORS_ORIGIN not set, every origin is allowed without credentials.")
	}

	return cfg, nil
}

// Validate checks struct constraints and production-only rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.IsProduction {
		if c.AccessTokenSecret == devAccessTokenSecret || c.RefreshTokenSecret == devRefreshTokenSecret {
			return errors.New("invalid configuration: development token secrets are not allowed in production")
		}
		if c.Cookie.SameSite == "none" && !c.Cookie.Secure {
			return errors.New("invalid configuration: SameSite=None cookies must be secure")
		}
		if len(c.CORSOrigins) == 0 || slices.Contains(c.CORSOrigins, "*") {
			return errors.New("invalid configuration: CORS_ORIGIN must list explicit origins in production")
		}
	}
	return nil
}

// durationFromEnv reads key as a duration. Malformed input is a configuration error.
func durationFromEnv(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid configuration: %s=%q: %w", key, raw, err)
	}
	return d, nil
}

// ParseDuration accepts time.ParseDuration syntax plus a whole-day suffix such as "7d".
func ParseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if days, ok := strings.CutSuffix(raw, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid day duration %q: %w", raw, err)
		}
		if n < 0 || n > maxDurationDays {
			return 0, fmt.Errorf("day duration %q out of range", raw)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(raw)
}

func parseLogLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func splitList(values ...string) []string {
	var out []string
	seen := map[string]bool{}
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			item = strings.TrimSpace(item)
			if item == "" || seen[item] {
				continue
			}
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
