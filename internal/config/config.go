package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Museum  MuseumConfig
	Listing ListingConfig
	Logger  LoggerConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// MuseumConfig holds configuration for the external collection source.
type MuseumConfig struct {
	BaseURL      string
	FetchTimeout int // seconds, per outbound object fetch
}

// ListingConfig holds configuration for the object-ID listings. The featured
// and merchandise lists are configured independently; when no file or S3 key
// is set the built-in defaults are used.
type ListingConfig struct {
	FeaturedFile    string
	MerchandiseFile string
	S3              S3Config
}

// S3Config holds AWS S3 configuration for object-ID listing files.
type S3Config struct {
	Enabled        bool
	Bucket         string
	Region         string
	FeaturedKey    string
	MerchandiseKey string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Museum: MuseumConfig{
			BaseURL:      getEnv("MUSEUM_BASE_URL", "https://collectionapi.metmuseum.org/public/collection/v1"),
			FetchTimeout: getEnvAsInt("MUSEUM_FETCH_TIMEOUT", 10),
		},
		Listing: ListingConfig{
			FeaturedFile:    getEnv("LISTING_FEATURED_FILE", ""),
			MerchandiseFile: getEnv("LISTING_MERCHANDISE_FILE", ""),
			S3: S3Config{
				Enabled:        getEnvAsBool("S3_ENABLED", false),
				Bucket:         getEnv("S3_BUCKET", ""),
				Region:         getEnv("S3_REGION", "us-east-1"),
				FeaturedKey:    getEnv("S3_FEATURED_KEY", "listings/featured.txt"),
				MerchandiseKey: getEnv("S3_MERCHANDISE_KEY", "listings/merchandise.txt"),
			},
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Museum.BaseURL == "" {
		return fmt.Errorf("museum base URL is required")
	}

	if c.Museum.FetchTimeout < 1 {
		return fmt.Errorf("museum fetch timeout must be at least 1 second")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Listing.S3.Enabled {
		if c.Listing.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.Listing.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
