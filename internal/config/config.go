package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DiscordToken   string `validate:"required"`
	DiscordAppID   string `validate:"required"`
	WatchedForumID string // empty disables forum auto-scan

	EQDBBaseURL       string        `validate:"required,url"`
	HTTPTimeout       time.Duration `validate:"gt=0"`
	LookupConcurrency int           `validate:"gte=1"`

	HealthPort  string
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:      os.Getenv("DISCORD_TOKEN"),
		DiscordAppID:      os.Getenv("DISCORD_APP_ID"),
		EQDBBaseURL:       getEnv("EQDB_BASE_URL", "https://eqdb.net/api/v1"),
		HTTPTimeout:       time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
		LookupConcurrency: getEnvAsInt("LOOKUP_CONCURRENCY", 4),
		HealthPort:        getEnv("HEALTH_PORT", "8082"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		Environment:       getEnv("ENVIRONMENT", "dev"),
		ServiceName:       getEnv("SERVICE_NAME", "craftbot"),
		Version:           getEnv("VERSION", "dev"),
	}

	// WATCHED_FORUM_ID is optional. When set it must be a numeric channel ID;
	// anything else disables auto-scan and leaves manual commands working.
	if forumID := os.Getenv("WATCHED_FORUM_ID"); forumID != "" {
		if _, err := strconv.ParseInt(forumID, 10, 64); err != nil {
			slog.Error("Invalid WATCHED_FORUM_ID, forum auto-scan disabled", "value", forumID)
		} else {
			cfg.WatchedForumID = forumID
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Invalid integer environment variable, using default", "key", key, "value", value, "default", defaultValue)
		return defaultValue
	}
	return parsed
}
