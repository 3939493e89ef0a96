package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the booking server
type Config struct {
	Port                   string
	Origin                 string
	Environment            string
	LogLevel               string
	NotificationDuration   time.Duration
	SeedSampleAppointments bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	notificationMs, err := strconv.Atoi(getEnv("NOTIFICATION_DURATION_MS", "2000"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTIFICATION_DURATION_MS: %w", err)
	}
	if notificationMs <= 0 {
		return nil, fmt.Errorf("invalid NOTIFICATION_DURATION_MS: must be positive, got %d", notificationMs)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_SAMPLE_APPOINTMENTS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_SAMPLE_APPOINTMENTS: %w", err)
	}

	return &Config{
		Port:                   getEnv("PORT", "3000"),
		Origin:                 getEnv("ORIGIN", "http://localhost:3000"),
		Environment:            getEnv("APP_ENV", "development"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		NotificationDuration:   time.Duration(notificationMs) * time.Millisecond,
		SeedSampleAppointments: seed,
	}, nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
