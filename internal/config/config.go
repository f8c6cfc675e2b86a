package config

import (
	"os"

	"gridiron/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig `validate:"required"`
	Data   DataConfig   `validate:"required"`
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string `validate:"required"`
	GinMode string
}

// DataConfig holds dataset settings
type DataConfig struct {
	DatasetPath string `validate:"required"`
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: *loadServerConfig(),
		Data:   *loadDataConfig(),
	}

	// Validate required fields
	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		DatasetPath: getEnvOrDefault("DATA_PATH", "cfb23.csv"),
	}
}

func validateConfig(config *Config) error {
	if config.Data.DatasetPath == "" {
		return errors.ConfigInvalid("dataset path is required")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
