package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	BookingAPIURL string // Required: booking backend API root
	AuthAPIURL    string // Required: remote authentication service root

	CookieDomain   string        // Optional: cookie Domain attribute (default: host-only)
	CookieSecure   bool          // Optional: Secure attribute on cookies (default: true)
	SealKeyPath    string        // Optional: path to session seal key file (default: ephemeral key)
	DatabaseFile   string        // Optional: path to SQLite database file (default: ./gateway.db)
	AccessTokenTTL time.Duration // Optional: access token cookie lifetime (default: 2h)
	SessionTTL     time.Duration // Optional: server-side session lifetime (default: 168h)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		BookingAPIURL: os.Getenv("BOOKING_API_URL"),
		AuthAPIURL:    os.Getenv("AUTH_API_URL"),

		CookieDomain:   os.Getenv("COOKIE_DOMAIN"),
		CookieSecure:   getEnvBoolOrDefault("COOKIE_SECURE", true),
		SealKeyPath:    os.Getenv("SESSION_SEAL_KEY_PATH"),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "gateway.db"),
		AccessTokenTTL: getEnvDurationOrDefault("ACCESS_TOKEN_TTL", 2*time.Hour),
		SessionTTL:     getEnvDurationOrDefault("SESSION_TTL", 7*24*time.Hour),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
