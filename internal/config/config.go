package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string // "development", "production"

	// Storage. Empty URLs select the in-memory stores.
	DatabaseURL string
	RedisURL    string

	// Auth
	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	// CORS
	AllowedOrigins []string

	// Storefront
	Currency string

	// Catalog snapshot refresh
	CatalogRefreshEnabled  bool
	CatalogRefreshSchedule string // Cron expression (e.g., "*/5 * * * *")

	// EMI
	EMIOptionsCacheTTL time.Duration

	// Observability
	MetricsEnabled bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Storage
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		// Auth
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		// CORS
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),

		// Storefront
		Currency: getEnv("CURRENCY", "NPR"),

		// Catalog snapshot refresh
		CatalogRefreshEnabled:  getBoolEnv("CATALOG_REFRESH_ENABLED", true),
		CatalogRefreshSchedule: getEnv("CATALOG_REFRESH_SCHEDULE", "*/5 * * * *"),

		// EMI
		EMIOptionsCacheTTL: getDurationEnv("EMI_OPTIONS_CACHE_TTL", 10*time.Minute),

		// Observability
		MetricsEnabled: getBoolEnv("METRICS_ENABLED", true),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesDatabase reports whether Postgres-backed repositories are configured.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// UsesRedis reports whether the Redis cart store and option cache are configured.
func (c *Config) UsesRedis() bool {
	return c.RedisURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
