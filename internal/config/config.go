package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID       string
	Port            string
	LogLevel        string
	SessionTTL      time.Duration
	SweeperInterval time.Duration
}

func New() *Config {
	// Load .env for local development; ignore absence in production.
	_ = godotenv.Load()

	return &Config{
		ProjectID:       os.Getenv("PROJECTID"),
		Port:            getEnv("PORT", "8080"),
		LogLevel:        os.Getenv("LOGLEVEL"),
		SessionTTL:      getDuration("SESSIONTTL", 7*24*time.Hour),
		SweeperInterval: getDuration("SWEEPERINTERVAL", time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
