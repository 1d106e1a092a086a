package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	// Two separate stores, matching the deployment this replaces: one file
	// for credentials, one for work records and change requests. No
	// operation ever touches both, so no cross-store transaction scope is
	// needed.
	UsersDBPath string
	HoursDBPath string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	// SessionSecret signs the session cookie token.
	SessionSecret string
	SessionTTL    time.Duration
	// StrictDeleteOwnership enables the corrected delete behavior: change
	// requests may only be deleted by their owner. Off by default for
	// compatibility with the system this replaces, which never checked.
	StrictDeleteOwnership bool
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		UsersDBPath:           getEnv("USERS_DB_PATH", "database1.db"),
		HoursDBPath:           getEnv("HOURS_DB_PATH", "arbejdstider.db"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:               getEnvInt("REDIS_DB", 0),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		SessionSecret:         getEnv("SESSION_SECRET", "change-me"),
		SessionTTL:            getEnvDuration("SESSION_TTL", 12*time.Hour),
		StrictDeleteOwnership: getEnvBool("STRICT_DELETE_OWNERSHIP", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
