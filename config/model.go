package config

import "time"

type Config struct {
	AppEnv                 string
	Port                   string
	DatabaseURL            string
	DatabaseName           string
	JWTSecret              string
	TokenTTL               time.Duration
	CollectionUserName     string
	CollectionExpensesName string
}

// IsDevelopment checks if the current environment is development
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction checks if the current environment is production
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
