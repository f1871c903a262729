package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/gti/resource-planner/internal/models"
)

type Config struct {
	DatabaseURL           string
	APIKey                string
	WebhookDestinationURL string
	Port                  string

	LogLevel  string
	LogFormat string

	// RedisURL selects the shared alert cache; empty keeps it in memory.
	RedisURL      string
	AlertCacheTTL time.Duration

	// SweepSchedule is a standard cron spec; empty disables the sweep.
	SweepSchedule string

	DefaultAlertSettings models.AlertSettings
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	defaults := models.DefaultAlertSettings()

	cfg := &Config{
		DatabaseURL:           getEnv("DATABASE_URL", "postgres://localhost:5432/resource_planner?sslmode=disable"),
		APIKey:                getEnv("API_KEY", ""),
		WebhookDestinationURL: getEnv("WEBHOOK_DESTINATION_URL", ""),
		Port:                  getEnv("PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "json"),
		RedisURL:              getEnv("REDIS_URL", ""),
		AlertCacheTTL:         getEnvDuration("ALERT_CACHE_TTL", 5*time.Minute),
		SweepSchedule:         getEnv("SWEEP_SCHEDULE", ""),
		DefaultAlertSettings: models.AlertSettings{
			WarningThreshold:          getEnvFloat("DEFAULT_WARNING_THRESHOLD", defaults.WarningThreshold),
			ErrorThreshold:            getEnvFloat("DEFAULT_ERROR_THRESHOLD", defaults.ErrorThreshold),
			CriticalThreshold:         getEnvFloat("DEFAULT_CRITICAL_THRESHOLD", defaults.CriticalThreshold),
			UnderUtilizationThreshold: getEnvFloat("DEFAULT_UNDER_UTILIZATION_THRESHOLD", defaults.UnderUtilizationThreshold),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
