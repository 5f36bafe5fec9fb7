package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port               int
	DevMode            bool
	DatabasePath       string
	LogLevel           string
	FreePlanAICalls    int // Monthly AI interpretation calls on FREE
	ProPlanAICalls     int // Monthly AI interpretation calls on PRO
	ChartRetentionDays int // 0 keeps stored charts forever
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnvAsInt("PORT", 8080),
		DevMode:            getEnvAsBool("DEV_MODE", false),
		DatabasePath:       getEnv("DATABASE_PATH", "./data/astro.db"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		FreePlanAICalls:    getEnvAsInt("FREE_PLAN_AI_CALLS_PER_MONTH", 1),
		ProPlanAICalls:     getEnvAsInt("PRO_PLAN_AI_CALLS_PER_MONTH", 100),
		ChartRetentionDays: getEnvAsInt("CHART_RETENTION_DAYS", 0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.FreePlanAICalls < 0 || c.ProPlanAICalls < 0 {
		return fmt.Errorf("plan AI call limits must not be negative")
	}
	if c.ChartRetentionDays < 0 {
		return fmt.Errorf("CHART_RETENTION_DAYS must not be negative")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
