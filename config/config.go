package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	FrontendURL []string
	// Database Configuration
	DBUrl            string
	DBMaxConns       int
	DBMinConns       int
	DBSimpleProtocol bool // pgbouncer transaction mode
	DBAutoMigrate    bool
	// Redis Configuration (optional, rate limiting falls back to in-memory)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitRequests      int
	// Server Configuration
	ShutdownTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// .env only matters locally; a missing file is not an error
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: splitOrigins(getEnv("FRONTEND_URL", "http://localhost:3000")),
		// Database Configuration
		DBUrl:            getEnv("DATABASE_URL", ""),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 25),
		DBMinConns:       getEnvInt("DB_MIN_CONNS", 5),
		DBSimpleProtocol: getEnvBool("DB_SIMPLE_PROTOCOL", false),
		DBAutoMigrate:    getEnvBool("DB_AUTO_MIGRATE", true),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitRequests:      getEnvInt("RATE_LIMIT_REQUESTS", 120),
		// Server Configuration
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// Validate reports configuration that would make the server unusable.
func (c *Config) Validate() error {
	if c.DBUrl == "" {
		return errors.New("config: DATABASE_URL is required")
	}
	if c.DBMinConns > c.DBMaxConns {
		return errors.New("config: DB_MIN_CONNS cannot exceed DB_MAX_CONNS")
	}
	if c.RateLimitRequests < 1 || c.RateLimitWindowSeconds < 1 {
		return errors.New("config: rate limit window and request count must be positive")
	}
	return nil
}

// RateLimitWindow returns the configured window as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// splitOrigins trims trailing slashes so "https://app.example.com/" matches the Origin header.
func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
