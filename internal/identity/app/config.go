package app

import (
	"os"
	"strconv"
	"time"
)

// DefaultJWTSecret is the development fallback signing secret. Running with
// it in anything but dev is a misconfiguration; New logs a loud warning when
// it is in effect.
const DefaultJWTSecret = "dev-insecure-jwt-secret"

type Config struct {
	Issuer    string // Optional: issuer claim for tokens (default: campfire-identity)
	JWTSecret string // Optional: HS256 signing secret (default: DefaultJWTSecret, dev only)

	JWTExpiration       time.Duration // Optional: access token lifetime (default: 15m)
	DatabaseURL         string        // Optional: path to SQLite database file (default: ./identity.db)
	APIVersion          string        // Optional: API path version segment (default: v1)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:              getEnvOrDefault("JWT_ISSUER", "campfire-identity"),
		JWTSecret:           getEnvOrDefault("JWT_SECRET", DefaultJWTSecret),
		JWTExpiration:       getEnvDurationOrDefault("JWT_EXPIRATION", 15*time.Minute),
		DatabaseURL:         getEnvOrDefault("DATABASE_URL", "identity.db"),
		APIVersion:          getEnvOrDefault("API_VERSION", "v1"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accept durations ("15m", "1h") and bare integers meaning minutes.
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
