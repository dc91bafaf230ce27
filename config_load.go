package main

import (
	"os"
	"time"

	"expense-tracker-backend/config"
)

// LoadConfig loads configuration from environment variables
func LoadConfig() *config.Config {

	config := &config.Config{
		AppEnv:                 getEnv("APP_ENV", "development"),
		Port:                   getEnv("PORT", "8080"),
		DatabaseURL:            getEnv("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName:           getEnv("DATABASE_NAME", "ExpenseTracker_Dev"),
		JWTSecret:              getEnv("JWT_SECRET", "your-dev-secret-key"),
		TokenTTL:               getEnvDuration("TOKEN_TTL", 24*time.Hour),
		CollectionUserName:     "users",
		CollectionExpensesName: "expenses",
	}

	return config
}

// getEnv gets environment variable with a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
