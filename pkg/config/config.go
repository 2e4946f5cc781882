package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment   string
	IsProduction  bool
	IsDevelopment bool

	Port        string
	PostgresURL string
	JWTSecret   string

	SeedOnStart bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		PostgresURL: getEnv("POSTGRES_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		SeedOnStart: getEnv("SEED_ON_START", "false") == "true",
	}

	cfg.IsProduction = cfg.Environment == "production"
	cfg.IsDevelopment = !cfg.IsProduction

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.PostgresURL == "" {
		return fmt.Errorf("POSTGRES_URL environment variable is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
