package app

import (
	"os"
	"strconv"
	"time"

	"github.com/chapterhouse/pageturn/pkg/jwtx"
)

type Config struct {
	Issuer string // Issuer claim for access and invite tokens

	SigningKeyFile       string        // Path to the Ed25519 signing key PEM (generated on first start)
	DatabaseFile         string        // Path to SQLite database file (default: ./pageturn.db)
	PepperFile           string        // Path to file containing pepper for password hashing (default: ./pepper)
	AccessTokenTTL       time.Duration // Access token lifetime (default: 15m)
	InviteTokenTTL       time.Duration // Invite token lifetime (default: 168h)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Invite housekeeping interval (default: 1h)
	InviteRetention      time.Duration // How long processed invites are kept (default: 90 days)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               getEnvOrDefault("PAGETURN_ISSUER", "pageturn"),
		SigningKeyFile:       getEnvOrDefault("PAGETURN_SIGNING_KEY_FILE", "signing.pem"),
		DatabaseFile:         getEnvOrDefault("PAGETURN_DATABASE_FILE", "pageturn.db"),
		PepperFile:           getEnvOrDefault("PAGETURN_PEPPER_FILE", "pepper"),
		AccessTokenTTL:       getEnvDurationOrDefault("PAGETURN_ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		InviteTokenTTL:       getEnvDurationOrDefault("PAGETURN_INVITE_TOKEN_TTL", jwtx.DefaultInviteTokenTTL),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		InviteRetention:      getEnvDurationOrDefault("INVITE_RETENTION", 90*24*time.Hour),
	}

	return cfg
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
