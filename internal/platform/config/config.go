package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"

	"github.com/SscSPs/budgetwise/internal/platform/logging"
)

// Supported storage backends.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Backend            string
	DatabaseURL        string
	SQLiteDBPath       string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	LogLevel           string
	LogFormat          string
	RateLimit          string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_BACKEND", BackendSQLite)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SQLITE_DB_PATH", filepath.Join(".", "data", "budgetwise.db"))
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Actual environment variables win over .env values, which win over defaults.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	shutdownTimeout, err := time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v.GetString("SHUTDOWN_TIMEOUT"), err)
	}

	cfg := &Config{
		Backend:            strings.ToLower(strings.TrimSpace(v.GetString("DB_BACKEND"))),
		DatabaseURL:        v.GetString("PGSQL_URL"),
		SQLiteDBPath:       v.GetString("SQLITE_DB_PATH"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          strings.ToLower(v.GetString("LOG_FORMAT")),
		RateLimit:          v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		ShutdownTimeout:    shutdownTimeout,
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.Backend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			problems = append(problems, "PGSQL_URL is required when DB_BACKEND is postgres")
		}
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			problems = append(problems, "SQLITE_DB_PATH cannot be empty when DB_BACKEND is sqlite")
		}
	case BackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("invalid DB_BACKEND %q: must be one of [%s %s %s]", c.Backend, BackendPostgres, BackendSQLite, BackendMemory))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid PORT %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid PORT %d: must be between 1 and 65535", port))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid LOG_LEVEL: %v", err))
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		problems = append(problems, fmt.Sprintf("invalid LOG_FORMAT %q: must be json or text", c.LogFormat))
	}

	if _, err := limiter.NewRateFromFormatted(c.RateLimit); err != nil {
		problems = append(problems, fmt.Sprintf("invalid RATE_LIMIT %q: %v", c.RateLimit, err))
	}

	if c.ShutdownTimeout <= 0 {
		problems = append(problems, "SHUTDOWN_TIMEOUT must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
