package config

import (
	"fmt"
	"os"
	"strconv"
)

// LoadTestConfig loads the configuration from the .env file or environment variables for integration tests
// If environment variables are not set, returns a Config with empty values
// which allows tests to use fallback DSN values
func LoadTestConfig() (*Config, error) {
	cfg := &Config{}

	dbHost := os.Getenv("TEST_DB_HOST")
	if dbHost == "" {
		// Return empty config to allow fallback DSN in tests
		return cfg, nil
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("TEST_DB_PORT")
	if dbPortStr == "" {
		return cfg, nil
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TEST_DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("TEST_DB_USER")
	if dbUser == "" {
		return cfg, nil
	}
	cfg.Database.User = dbUser

	cfg.Database.Password = os.Getenv("TEST_DB_PASSWORD")

	dbName := os.Getenv("TEST_DB_NAME")
	if dbName == "" {
		return cfg, nil
	}
	cfg.Database.DBName = dbName

	return cfg, nil
}
