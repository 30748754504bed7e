package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Database. An empty DatabaseURL selects the SQLite file at SQLitePath.
	DatabaseURL    string
	SQLitePath     string
	MigrationsPath string

	// Auth
	JWTSecret           string
	JWTExpirationDur    time.Duration
	SessionTTL          time.Duration
	SessionCookieSecure bool

	// Generative backend. An empty AIAPIKey means fallback-only advice.
	AIAPIKey  string
	AIBaseURL string
	AIModel   string
	AITimeout time.Duration

	// HTTP
	CORSAllowedOrigins []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SQLitePath:     getEnv("SQLITE_PATH", "financeai.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),

		JWTSecret:           getEnv("JWT_SECRET", "jwt-secret-key-change-in-production"),
		JWTExpirationDur:    getDuration("JWT_EXPIRES_IN", 24*time.Hour),
		SessionTTL:          getDuration("SESSION_TTL", 24*time.Hour),
		SessionCookieSecure: getBool("SESSION_COOKIE_SECURE", false),

		AIAPIKey:  getEnv("AI_API_KEY", os.Getenv("GEMINI_API_KEY")),
		AIBaseURL: getEnv("AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		AIModel:   getEnv("AI_MODEL", "gemini-2.0-flash"),
		AITimeout: getDuration("AI_TIMEOUT", 30*time.Second),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	return config, nil
}

// UseSQLite reports whether the store should be the local SQLite file.
func (c *Config) UseSQLite() bool {
	return c.DatabaseURL == ""
}

// AIEnabled reports whether a generative backend is configured.
func (c *Config) AIEnabled() bool {
	return c.AIAPIKey != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %t\n", key, raw, defaultValue)
		return defaultValue
	}
	return b
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
