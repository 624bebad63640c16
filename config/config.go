package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL string

	// HTTP server configuration
	HTTPPort string

	// Secret used to verify bearer tokens issued by the identity provider
	JWTSecret string

	// Prize claim window in days
	PrizeClaimDays int

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    os.Getenv("HTTP_PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),

		// Defaults
		PrizeClaimDays: 5,

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if _, err := strconv.Atoi(config.HTTPPort); err != nil {
		return nil, fmt.Errorf("invalid HTTP_PORT value %q", config.HTTPPort)
	}

	if days := os.Getenv("PRIZE_CLAIM_DAYS"); days != "" {
		if parsedDays, err := strconv.Atoi(days); err == nil {
			config.PrizeClaimDays = parsedDays
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET is required")
		}
	}

	return config, nil
}
