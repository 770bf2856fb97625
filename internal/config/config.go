package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Reconciliation fallbacks applied when a profile is still unprovisioned after the last poll
const (
	FallbackNewCompany = "new_company"
	FallbackFail       = "fail"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes int    `mapstructure:"JWT_TTL_MINUTES"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Identities whose email is listed here are provisioned as super admins
	SuperAdminEmails []string `mapstructure:"SUPER_ADMIN_EMAILS"`

	// Path to the YAML catalog of purchasable modules seeded into app_modules
	ModuleCatalogPath string `mapstructure:"MODULE_CATALOG_PATH"`

	// Membership reconciliation
	ReconcileInitialIntervalMS int    `mapstructure:"RECONCILE_INITIAL_INTERVAL_MS"`
	ReconcileMaxIntervalMS     int    `mapstructure:"RECONCILE_MAX_INTERVAL_MS"`
	ReconcileMaxAttempts       int    `mapstructure:"RECONCILE_MAX_ATTEMPTS"`
	ReconcileTimeoutFallback   string `mapstructure:"RECONCILE_TIMEOUT_FALLBACK"`

	// Delete matched invites when a new identity joins through them
	InviteConsumeOnJoin bool `mapstructure:"INVITE_CONSUME_ON_JOIN"`

	// Rate limiting for the public auth endpoints
	RateLimitAuthRequests  int `mapstructure:"RATELIMIT_AUTH_REQUESTS"`
	RateLimitAuthWindowSec int `mapstructure:"RATELIMIT_AUTH_WINDOW_SEC"`
	RateLimitAuthBurst     int `mapstructure:"RATELIMIT_AUTH_BURST"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Comma separated env values arrive as a single element
	config.AllowedOrigins = splitList(config.AllowedOrigins)
	config.SuperAdminEmails = splitList(config.SuperAdminEmails)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "saas_portal")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL_MINUTES", 60)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	viper.SetDefault("SUPER_ADMIN_EMAILS", []string{})
	viper.SetDefault("MODULE_CATALOG_PATH", "config/modules.yaml")

	// Reconciliation defaults: 100ms, 200ms, 400ms, ... capped at 1s, 8 polls
	viper.SetDefault("RECONCILE_INITIAL_INTERVAL_MS", 100)
	viper.SetDefault("RECONCILE_MAX_INTERVAL_MS", 1000)
	viper.SetDefault("RECONCILE_MAX_ATTEMPTS", 8)
	viper.SetDefault("RECONCILE_TIMEOUT_FALLBACK", FallbackNewCompany)

	viper.SetDefault("INVITE_CONSUME_ON_JOIN", false)

	viper.SetDefault("RATELIMIT_AUTH_REQUESTS", 10)
	viper.SetDefault("RATELIMIT_AUTH_WINDOW_SEC", 60)
	viper.SetDefault("RATELIMIT_AUTH_BURST", 10)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.ReconcileTimeoutFallback {
	case FallbackNewCompany, FallbackFail:
	default:
		return fmt.Errorf("RECONCILE_TIMEOUT_FALLBACK must be %q or %q", FallbackNewCompany, FallbackFail)
	}

	if config.ReconcileMaxAttempts < 1 {
		return fmt.Errorf("RECONCILE_MAX_ATTEMPTS must be at least 1")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// JWTTTL returns the lifetime of issued session tokens
func (c *Config) JWTTTL() time.Duration {
	if c.JWTTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

// ReconcileInitialInterval returns the first wait between profile polls
func (c *Config) ReconcileInitialInterval() time.Duration {
	return time.Duration(c.ReconcileInitialIntervalMS) * time.Millisecond
}

// ReconcileMaxInterval returns the cap on the wait between profile polls
func (c *Config) ReconcileMaxInterval() time.Duration {
	return time.Duration(c.ReconcileMaxIntervalMS) * time.Millisecond
}

// RateLimitAuthWindow returns the window of the auth endpoint limiter
func (c *Config) RateLimitAuthWindow() time.Duration {
	return time.Duration(c.RateLimitAuthWindowSec) * time.Second
}
